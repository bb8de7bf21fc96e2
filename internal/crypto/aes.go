package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

func SHA256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// gcmForVersion resolve a chave da versão pedida e monta o AEAD.
func gcmForVersion(keyVersion string, keysMap map[string][]byte) (cipher.AEAD, error) {
	key, ok := keysMap[keyVersion]
	if !ok {
		return nil, fmt.Errorf("chave versão %q não configurada", keyVersion)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("chave versão %q deve ter 32 bytes (AES-256)", keyVersion)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt cifra plaintext com AES-256-GCM usando a chave da versão dada.
// O nonce é aleatório por chamada e deve ser persistido junto do ciphertext.
func Encrypt(plaintext []byte, keyVersion string, keysMap map[string][]byte) (ciphertext, nonce []byte, err error) {
	gcm, err := gcmForVersion(keyVersion, keysMap)
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Decrypt abre um ciphertext gerado por Encrypt com a mesma versão de chave.
func Decrypt(ciphertext, nonce []byte, keyVersion string, keysMap map[string][]byte) ([]byte, error) {
	gcm, err := gcmForVersion(keyVersion, keysMap)
	if err != nil {
		return nil, err
	}
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// ParseKeysEnv lê "v1:BASE64,v2:BASE64" e devolve versão -> chave de 32 bytes.
// Aceita base64 com ou sem padding; chaves de outro tamanho são erro.
func ParseKeysEnv(env string) (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, part := range strings.Split(env, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ver, b64, ok := strings.Cut(part, ":")
		if !ok || strings.TrimSpace(ver) == "" {
			continue
		}
		ver = strings.TrimSpace(ver)
		b64 = strings.TrimRight(strings.TrimSpace(b64), "=")
		key, err := base64.RawStdEncoding.DecodeString(b64)
		if err != nil {
			return nil, fmt.Errorf("chave versão %q: %w", ver, err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("chave versão %q deve ter 32 bytes para AES-256 (tem %d)", ver, len(key))
		}
		out[ver] = key
	}
	return out, nil
}
