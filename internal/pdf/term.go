package pdf

import (
	"bytes"
	"encoding/base64"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"
)

// SignatureBlock dados do carimbo de assinatura eletrônica no PDF do termo.
type SignatureBlock struct {
	SignerName                   string
	SignedAt                     string
	VerificationToken            string
	VerificationURL              string
	ProfessionalName             *string
	ProfessionalSignatureDataURL *string // data URL (data:image/png;base64,...) com a assinatura do profissional
}

// decodeDataURLImage extrai tipo (png/jpeg) e bytes de um data URL.
func decodeDataURLImage(dataURL string) (ext string, data []byte, ok bool) {
	dataURL = strings.TrimSpace(dataURL)
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, false
	}
	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return "", nil, false
	}
	header := dataURL[5:idx]
	if strings.HasPrefix(header, "image/png") {
		ext = "png"
	} else if strings.HasPrefix(header, "image/jpeg") || strings.HasPrefix(header, "image/jpg") {
		ext = "jpeg"
	} else {
		return "", nil, false
	}
	b64 := dataURL[idx+8:]
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil || len(data) == 0 {
		return "", nil, false
	}
	return ext, data, true
}

// BuildTermPDF gera o PDF do termo assinado: título, corpo em texto e bloco de
// assinatura eletrônica com token de verificação e QR code.
func BuildTermPDF(title, body string, block SignatureBlock) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 12)
	doc.MultiCell(0, 7, title, "", "C", false)
	doc.Ln(4)
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 6, body, "", "", false)

	// Assinatura do profissional: imagem quando cadastrada, senão nome em itálico
	hasSigImage := block.ProfessionalSignatureDataURL != nil && *block.ProfessionalSignatureDataURL != ""
	if hasSigImage {
		if ext, imgData, ok := decodeDataURLImage(*block.ProfessionalSignatureDataURL); ok {
			alias := "profsig"
			if doc.RegisterImageReader(alias, ext, bytes.NewReader(imgData)) != nil {
				doc.Ln(4)
				doc.Image(alias, 15, doc.GetY(), 50, 18, false, "", 0, "")
				doc.SetY(doc.GetY() + 19)
			}
		}
	} else if block.ProfessionalName != nil && *block.ProfessionalName != "" {
		doc.Ln(4)
		doc.SetFont("Times", "I", 12)
		doc.CellFormat(0, 8, *block.ProfessionalName, "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
	}

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Assinatura Eletronica", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.Ln(4)
	if block.SignerName != "" {
		doc.SetFont("Times", "I", 12)
		doc.CellFormat(0, 8, block.SignerName, "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
	}
	doc.CellFormat(0, 6, "Nome do assinante: "+block.SignerName, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Data/hora: "+block.SignedAt, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Token de verificacao: "+block.VerificationToken, "", 1, "L", false, 0, "")
	doc.Ln(4)
	if block.VerificationURL != "" {
		qrPNG, err := qrcode.Encode(block.VerificationURL, qrcode.Medium, 128)
		if err == nil {
			tmpFile, err := os.CreateTemp("", "qr-*.png")
			if err == nil {
				_, _ = tmpFile.Write(qrPNG)
				path := tmpFile.Name()
				tmpFile.Close()
				defer os.Remove(path)
				doc.RegisterImage(path, "PNG")
				doc.Image(path, 15, doc.GetY(), 30, 30, false, "", 0, "")
				doc.SetY(doc.GetY() + 32)
			}
		}
		doc.CellFormat(0, 6, "Link para verificacao: "+block.VerificationURL, "", 1, "L", false, 0, "")
	}
	doc.Ln(4)
	doc.MultiCell(0, 5, "Este termo foi assinado eletronicamente. A autenticidade pode ser verificada pelo link e token acima.", "", "", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
