package crypto

// https://minecraft.wiki/w/Protocol_encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

type Encryption struct {
	encryptStream cipher.Stream
	decryptStream cipher.Stream
	sharedSecret  []byte
}

func NewEncryption() *Encryption {
	return &Encryption{}
}

func (e *Encryption) SetSharedSecret(secret []byte) {
	e.sharedSecret = secret
}

func (e *Encryption) EnableEncryption() error {
	if e.sharedSecret == nil {
		return fmt.Errorf("shared secret not set")
	}

	block, err := aes.NewCipher(e.sharedSecret)
	if err != nil {
		return fmt.Errorf("failed to create AES cipher: %w", err)
	}

	e.encryptStream = NewEncryptStream(block, e.sharedSecret)
	e.decryptStream = NewDecryptStream(block, e.sharedSecret)

	return nil
}

func (e *Encryption) Encrypt(data []byte) []byte {
	if e.encryptStream == nil {
		return data
	}
	encrypted := make([]byte, len(data))
	e.encryptStream.XORKeyStream(encrypted, data)
	return encrypted
}

func (e *Encryption) Decrypt(data []byte) []byte {
	if e.decryptStream == nil {
		return data
	}
	decrypted := make([]byte, len(data))
	e.decryptStream.XORKeyStream(decrypted, data)
	return decrypted
}

func (e *Encryption) IsEnabled() bool {
	return e.encryptStream != nil && e.decryptStream != nil
}
