package handler

import (
	"errors"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"lyceum.by/newsportal/pkg/apperror"
)

// genericFailure is what users see when a mutation dies inside the
// persistence layer; the real error only goes to the server log.
const genericFailure = "Ошибка"

func addFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Printf("failed to save flash: %v", err)
	}
}

// takeFlashes drains the one-shot messages queued for this visitor.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		log.Printf("failed to clear flashes: %v", err)
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// flashMessage converts a service error into the user-facing notice.
func flashMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrDuplicateLogin):
		return "Логин уже занят"
	case errors.Is(err, apperror.ErrDuplicateEmail):
		return "Номер телефона уже зарегистрирован"
	case errors.Is(err, apperror.ErrInvalidPhone):
		return "Номер телефона должен иметь формат +375 XX XXX XX XX"
	case errors.Is(err, apperror.ErrInvalidCredentials):
		return "Неверный логин или пароль"
	default:
		log.Printf("[Internal Error]: %v", err)
		return genericFailure
	}
}
