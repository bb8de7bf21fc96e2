package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeCPF descarta máscara e qualquer caractere não numérico.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	b.Grow(len(cpf))
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CPFHash retorna SHA-256 em hex do CPF já normalizado.
// Usado como índice de unicidade sem expor o CPF em claro no banco.
func CPFHash(cpfNormalized string) string {
	h := sha256.Sum256([]byte(cpfNormalized))
	return hex.EncodeToString(h[:])
}
