package redemptionservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestRandomCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := randomCode(codeLength)
		require.NoError(t, err)
		require.Len(t, code, codeLength+1)
		assert.Equal(t, byte('-'), code[codeLength/2])
		for _, r := range strings.ReplaceAll(code, "-", "") {
			assert.Contains(t, codeAlphabet, string(r))
		}
	}
}

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *serviceMocks)
		expectedError error
	}{
		{
			name: "First draw is free",
			prepareMock: func(m *serviceMocks) {
				m.redemptionRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "Collision retries with a new code",
			prepareMock: func(m *serviceMocks) {
				m.redemptionRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil)
				m.redemptionRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "Attempts exhausted",
			prepareMock: func(m *serviceMocks) {
				m.redemptionRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxCodeAttempts)
			},
			expectedError: ErrCodeGeneration,
		},
		{
			name: "Lookup error",
			prepareMock: func(m *serviceMocks) {
				m.redemptionRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			code, err := service.generateCode(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Empty(t, code)
			} else {
				assert.NoError(t, err)
				assert.Len(t, code, codeLength+1)
			}
		})
	}
}
