package repo

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SignedTerm é o snapshot imutável de um termo de consentimento assinado.
// Title e Content guardam o texto final renderizado no momento da assinatura;
// o registro nunca é atualizado depois de criado.
type SignedTerm struct {
	ID                 uuid.UUID
	PatientID          uuid.UUID
	ProfessionalID     uuid.UUID
	ProcedureKey       string
	Title              string
	Content            string
	ImageAuthorization bool
	SignedAt           time.Time
	PDFSHA256          *string `gorm:"column:pdf_sha256"`
	PDFBytes           []byte  `gorm:"column:pdf_bytes"`
	VerificationToken  string
	CreatedAt          time.Time
}

// NewVerificationToken gera o token público de verificação (32 bytes hex).
func NewVerificationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func CreateSignedTerm(ctx context.Context, db *gorm.DB, patientID, professionalID uuid.UUID, procedureKey, title, content string, imageAuthorization bool, signedAt time.Time, pdfSHA256 *string, pdfBytes []byte, verificationToken string) (uuid.UUID, error) {
	var res struct{ ID uuid.UUID }
	err := db.WithContext(ctx).Raw(`
		INSERT INTO signed_terms (patient_id, professional_id, procedure_key, title, content, image_authorization, signed_at, pdf_sha256, pdf_bytes, verification_token)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id
	`, patientID, professionalID, procedureKey, title, content, imageAuthorization, signedAt, pdfSHA256, pdfBytes, verificationToken).Scan(&res).Error
	return res.ID, err
}

// SignedTermByID é a única consulta que carrega pdf_bytes; listagens e a
// verificação pública ficam só com os metadados.
func SignedTermByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*SignedTerm, error) {
	var s SignedTerm
	err := db.WithContext(ctx).Raw(`
		SELECT id, patient_id, professional_id, procedure_key, title, content, image_authorization, signed_at, pdf_sha256, pdf_bytes, verification_token, created_at
		FROM signed_terms WHERE id = ?
	`, id).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func SignedTermByVerificationToken(ctx context.Context, db *gorm.DB, token string) (*SignedTerm, error) {
	var s SignedTerm
	err := db.WithContext(ctx).Raw(`
		SELECT id, patient_id, professional_id, procedure_key, title, content, image_authorization, signed_at, pdf_sha256, verification_token, created_at
		FROM signed_terms WHERE verification_token = ?
	`, token).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func SignedTermsByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]SignedTerm, error) {
	var list []SignedTerm
	err := db.WithContext(ctx).Raw(`
		SELECT id, patient_id, professional_id, procedure_key, title, content, image_authorization, signed_at, pdf_sha256, verification_token, created_at
		FROM signed_terms WHERE patient_id = ? ORDER BY signed_at DESC
	`, patientID).Scan(&list).Error
	return list, err
}
