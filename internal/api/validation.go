package api

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidCPF   = errors.New("invalid cpf")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var nonDigits = regexp.MustCompile(`[^0-9]`)

func onlyDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidateEmailRegex valida formato de e-mail com o regex padrão do backend.
func ValidateEmailRegex(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateCPF verifica 11 dígitos e os dois dígitos verificadores do CPF.
// Sequências com todos os dígitos iguais (000..., 111...) são inválidas.
func ValidateCPF(cpf string) error {
	d := onlyDigits(cpf)
	if len(d) != 11 {
		return ErrInvalidCPF
	}
	allEqual := true
	for i := 1; i < 11; i++ {
		if d[i] != d[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return ErrInvalidCPF
	}
	if checkDigit(d, 9) != int(d[9]-'0') || checkDigit(d, 10) != int(d[10]-'0') {
		return ErrInvalidCPF
	}
	return nil
}

func checkDigit(d string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(d[i]-'0') * (pos + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
