package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Professional struct {
	ID                 uuid.UUID
	Email              string
	PasswordHash       string
	FullName           string
	LicenseCode        string // registro profissional em texto livre (ex.: "CRM 12345")
	Status             string
	SignatureImageData *string
}

func ProfessionalByEmail(ctx context.Context, db *gorm.DB, email string) (*Professional, error) {
	var p Professional
	err := db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, full_name, license_code, status, signature_image_data
		FROM professionals WHERE lower(email) = lower(?) AND status != 'CANCELLED'
	`, email).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func ProfessionalByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*Professional, error) {
	var p Professional
	err := db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, full_name, license_code, status, signature_image_data
		FROM professionals WHERE id = ?
	`, id).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func CreateProfessional(ctx context.Context, db *gorm.DB, email, passwordHash, fullName, licenseCode string) (uuid.UUID, error) {
	var res struct{ ID uuid.UUID }
	err := db.WithContext(ctx).Raw(`
		INSERT INTO professionals (email, password_hash, full_name, license_code, status)
		VALUES (?, ?, ?, ?, 'ACTIVE') RETURNING id
	`, email, passwordHash, fullName, licenseCode).Scan(&res).Error
	return res.ID, err
}

func UpdateProfessionalPassword(ctx context.Context, db *gorm.DB, id uuid.UUID, passwordHash string) error {
	return db.WithContext(ctx).Exec(`
		UPDATE professionals SET password_hash = ?, updated_at = now() WHERE id = ?
	`, passwordHash, id).Error
}

func UpdateProfessionalSignature(ctx context.Context, db *gorm.DB, id uuid.UUID, signatureImageData *string) error {
	return db.WithContext(ctx).Exec(`
		UPDATE professionals SET signature_image_data = ?, updated_at = now() WHERE id = ?
	`, signatureImageData, id).Error
}
