package crypto

import (
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	keysMap := map[string][]byte{"v1": make([]byte, 32)}
	plain := []byte("12345678909")
	cipher, nonce, err := Encrypt(plain, "v1", keysMap)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(cipher) == 0 || len(nonce) == 0 {
		t.Fatal("cipher e nonce não podem ser vazios")
	}
	dec, err := Decrypt(cipher, nonce, "v1", keysMap)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(dec) != string(plain) {
		t.Fatalf("decifrado %q != original %q", dec, plain)
	}
}

func TestEncryptUnknownKeyVersion(t *testing.T) {
	keysMap := map[string][]byte{"v1": make([]byte, 32)}
	if _, _, err := Encrypt([]byte("x"), "v9", keysMap); err == nil {
		t.Fatal("Encrypt com versão desconhecida deveria falhar")
	}
	if _, err := Decrypt([]byte("x"), []byte("y"), "v9", keysMap); err == nil {
		t.Fatal("Decrypt com versão desconhecida deveria falhar")
	}
}

func TestParseKeysEnv(t *testing.T) {
	// 32 bytes em base64 = 43 chars sem padding
	key := strings.Repeat("A", 43)
	m, err := ParseKeysEnv("v1:" + key)
	if err != nil {
		t.Fatalf("ParseKeysEnv: %v", err)
	}
	if len(m["v1"]) != 32 {
		t.Fatalf("tamanho da chave: %d", len(m["v1"]))
	}
	// variante com padding "=" no fim também deve funcionar
	mPad, err := ParseKeysEnv("v1:" + key + "=")
	if err != nil {
		t.Fatalf("ParseKeysEnv com padding: %v", err)
	}
	if len(mPad["v1"]) != 32 {
		t.Fatalf("tamanho da chave com padding: %d", len(mPad["v1"]))
	}
	// múltiplas versões separadas por vírgula
	m2, err := ParseKeysEnv("v1:" + key + ", v2:" + strings.Repeat("B", 43))
	if err != nil {
		t.Fatalf("ParseKeysEnv multi: %v", err)
	}
	if len(m2["v1"]) != 32 || len(m2["v2"]) != 32 {
		t.Fatalf("tamanhos: v1=%d v2=%d", len(m2["v1"]), len(m2["v2"]))
	}
	// chave curta é erro, não truncamento silencioso
	if _, err := ParseKeysEnv("v1:QUJD"); err == nil {
		t.Fatal("chave de 3 bytes deveria ser rejeitada")
	}
}

func TestNormalizeCPFAndHash(t *testing.T) {
	if got := NormalizeCPF("123.456.789-09"); got != "12345678909" {
		t.Fatalf("NormalizeCPF: %q", got)
	}
	if got := NormalizeCPF("abc"); got != "" {
		t.Fatalf("NormalizeCPF sem dígitos: %q", got)
	}
	h1 := CPFHash("12345678909")
	h2 := CPFHash(NormalizeCPF("123.456.789-09"))
	if h1 != h2 {
		t.Fatal("hash deve ser estável sobre o CPF normalizado")
	}
	if len(h1) != 64 {
		t.Fatalf("hash hex deve ter 64 chars, tem %d", len(h1))
	}
}
