package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/pointsward/loyalcore/pkg/utils"
)

type ContextKey string

const (
	OperatorIDKey ContextKey = "operatorID"
	BusinessIDKey ContextKey = "businessID"
)

// AuthMiddleware requires a valid operator token and puts the operator and
// business identifiers into the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), OperatorIDKey, claims.OperatorID)
		ctx = context.WithValue(ctx, BusinessIDKey, claims.BusinessID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
