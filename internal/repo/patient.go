package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Patient struct {
	ID            uuid.UUID
	FullName      string
	BirthDate     *string
	Email         *string
	CPFEncrypted  []byte
	CPFNonce      []byte
	CPFKeyVersion *string
	CPFHash       *string
}

// PatientsPaginated retorna pacientes ativos com limit e offset. limit 0 = sem limite.
func PatientsPaginated(ctx context.Context, db *gorm.DB, limit, offset int) ([]Patient, int, error) {
	var total int
	if err := db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM patients WHERE deleted_at IS NULL`).Scan(&total).Error; err != nil {
		return nil, 0, err
	}
	q := `
		SELECT id, full_name, birth_date::text, email,
		       cpf_encrypted, cpf_nonce, cpf_key_version, cpf_hash
		FROM patients
		WHERE deleted_at IS NULL
		ORDER BY full_name
	`
	args := []interface{}{}
	if limit > 0 {
		q += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}
	var list []Patient
	err := db.WithContext(ctx).Raw(q, args...).Scan(&list).Error
	return list, total, err
}

func PatientByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*Patient, error) {
	var p Patient
	err := db.WithContext(ctx).Raw(`
		SELECT id, full_name, birth_date::text, email,
		       cpf_encrypted, cpf_nonce, cpf_key_version, cpf_hash
		FROM patients
		WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

// PatientByCPFHash localiza um paciente ativo pelo hash do CPF normalizado.
// Usado para barrar cadastro duplicado antes do INSERT; o índice único parcial
// em cpf_hash é a garantia final contra corrida.
func PatientByCPFHash(ctx context.Context, db *gorm.DB, cpfHash string) (*Patient, error) {
	var p Patient
	err := db.WithContext(ctx).Raw(`
		SELECT id, full_name, birth_date::text, email,
		       cpf_encrypted, cpf_nonce, cpf_key_version, cpf_hash
		FROM patients
		WHERE cpf_hash = ? AND deleted_at IS NULL
	`, cpfHash).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func CreatePatient(ctx context.Context, db *gorm.DB, fullName string, birthDate, email *string, cpfEncrypted, cpfNonce []byte, cpfKeyVersion, cpfHash *string) (uuid.UUID, error) {
	var res struct{ ID uuid.UUID }
	err := db.WithContext(ctx).Raw(`
		INSERT INTO patients (full_name, birth_date, email, cpf_encrypted, cpf_nonce, cpf_key_version, cpf_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id
	`, fullName, birthDate, email, cpfEncrypted, cpfNonce, cpfKeyVersion, cpfHash).Scan(&res).Error
	return res.ID, err
}

func UpdatePatient(ctx context.Context, db *gorm.DB, id uuid.UUID, fullName string, birthDate, email *string) error {
	result := db.WithContext(ctx).Exec(`
		UPDATE patients SET full_name = ?, birth_date = ?, email = ?, updated_at = now()
		WHERE id = ? AND deleted_at IS NULL
	`, fullName, birthDate, email, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func SoftDeletePatient(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	result := db.WithContext(ctx).Exec(`UPDATE patients SET deleted_at = now() WHERE id = ? AND deleted_at IS NULL`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
