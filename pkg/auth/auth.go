package auth

import (
	"context"

	"github.com/pkg/errors"
)

const XUserNameHeader = "X-User-Name"

type userNameKey struct{}

var ErrNoUserName = errors.New("user-name is empty")

func SetUserName(ctx context.Context, userName string) context.Context {
	return context.WithValue(ctx, userNameKey{}, userName)
}

func GetUserName(ctx context.Context) (string, error) {
	userName, ok := ctx.Value(userNameKey{}).(string)
	if !ok || userName == "" {
		return "", ErrNoUserName
	}
	return userName, nil
}
