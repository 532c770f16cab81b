package middleware

import (
	"context"
	"net/http"

	"rathh/infras/jwt"
	"rathh/infras/otel"
	"rathh/shared/constant"
	"rathh/shared/failure"
	"rathh/transport/http/response"
)

// ClientIdentity resolves which client's slots a request operates on. A
// valid bearer token wins; anonymous clients identify themselves with the
// X-Client-ID header instead. Requests with neither are rejected.
type ClientIdentity interface {
	Resolve(next http.Handler) http.Handler
}

type clientIdentityImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewClientIdentity(jwtService jwt.JWT, otel otel.Otel) ClientIdentity {
	return &clientIdentityImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Resolve implements ClientIdentity.
func (m *clientIdentityImpl) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "client_identity.middleware")

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader != "" {
			tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
			if err != nil {
				err = failure.Unauthorized("invalid authorization header format")
				response.WithError(writer, err)

				scope.TraceError(err)
				scope.End()

				return
			}

			claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
			if err != nil || claims.UserID == "" {
				err = failure.Unauthorized("invalid or expired token")
				response.WithError(writer, err)

				scope.TraceError(err)
				scope.End()

				return
			}

			scope.SetAttribute("client.source", "token")

			ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
			ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)
			ctx = context.WithValue(ctx, constant.ContextKeyClientID, claims.UserID)

			scope.End()
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		clientID := request.Header.Get(constant.RequestHeaderClientID)
		if clientID == "" {
			response.WithError(writer, failure.MissingClientID)

			scope.TraceError(failure.MissingClientID)
			scope.End()

			return
		}

		scope.SetAttribute("client.source", "header")

		ctx = context.WithValue(ctx, constant.ContextKeyClientID, clientID)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// ClientIDFromContext returns the resolved client id, empty when the request
// skipped the identity middleware.
func ClientIDFromContext(ctx context.Context) string {
	clientID, _ := ctx.Value(constant.ContextKeyClientID).(string)

	return clientID
}
