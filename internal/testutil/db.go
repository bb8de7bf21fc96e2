package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/termosaude/backend/internal/migrate"
)

// OpenDB abre GORM a partir de DATABASE_URL para testes de integração.
// Sem a variável definida retorna nil, e o teste deve se auto-pular.
func OpenDB(ctx context.Context) (*gorm.DB, string) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, ""
	}
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, url
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, url
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, url
	}
	return db, url
}

// MustMigrate aplica as migrations do repositório no banco de teste.
func MustMigrate(ctx context.Context, db *gorm.DB) error {
	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}
	return migrate.Run(ctx, db, dir)
}

// findMigrationsDir sobe diretórios a partir do cwd do teste até achar
// migrations/ (testes de pacote rodam em internal/<pkg>, não na raiz).
func findMigrationsDir() (string, error) {
	cur, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(cur, "migrations")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return "", errors.New("diretório migrations não encontrado a partir do cwd")
}
