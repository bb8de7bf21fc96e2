package seed

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/termosaude/backend/internal/auth"
)

// Run cria o profissional padrão no primeiro boot. Idempotente: se já houver
// profissionais cadastrados, não faz nada.
func Run(ctx context.Context, db *gorm.DB) error {
	var n int
	if err := db.WithContext(ctx).Raw("SELECT COUNT(*) FROM professionals").Scan(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := auth.HashPassword("ChangeMe123!")
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Exec(`
		INSERT INTO professionals (email, password_hash, full_name, license_code, status)
		VALUES (?, ?, ?, ?, 'ACTIVE')
	`, "profissional@termosaude.local", hash, "Profissional Padrão", "CRM 00000").Error; err != nil {
		return err
	}
	log.Printf("seed: profissional padrão criado (troque a senha no primeiro login)")
	return nil
}
