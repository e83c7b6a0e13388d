package redemptionservice

import (
	"context"
	"crypto/rand"
	"math/big"

	"go.uber.org/zap"
)

// codeAlphabet drops 0/O/1/I so codes survive being read out loud at a
// counter.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

// generateCode draws random codes until one is unused. The space is 32^8, so
// collisions are practically impossible; the attempt bound exists to keep the
// failure mode defined instead of looping forever.
func (s *Service) generateCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := randomCode(codeLength)
		if err != nil {
			return "", err
		}
		exists, err := s.redemptionRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		zap.L().Warn("redeem code collision", zap.String("code", code), zap.Int("attempt", attempt))
	}
	return "", ErrCodeGeneration
}

func randomCode(length int) (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	buf := make([]byte, 0, length+1)
	for i := 0; i < length; i++ {
		if i == length/2 {
			buf = append(buf, '-')
		}
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf = append(buf, codeAlphabet[n.Int64()])
	}
	return string(buf), nil
}
