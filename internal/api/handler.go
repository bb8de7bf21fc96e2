package api

import (
	"gorm.io/gorm"

	"github.com/termosaude/backend/internal/cache"
	"github.com/termosaude/backend/internal/config"
	"github.com/termosaude/backend/internal/term"
)

type Handler struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Cache    *cache.TTL
	Renderer *term.Renderer
	Registry *term.Registry

	hashPassword            func(string) (string, error)
	sendSignedTermCopyEmail func(to, name string, pdf []byte, verificationToken string) error
}

func (h *Handler) SetHashPassword(fn func(string) (string, error)) { h.hashPassword = fn }

func (h *Handler) SetSendSignedTermCopyEmail(fn func(to, name string, pdf []byte, verificationToken string) error) {
	h.sendSignedTermCopyEmail = fn
}
