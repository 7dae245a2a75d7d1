package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	codeCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength     = 6
)

// GenerateCode gera o código público curto de um imóvel (ex: "K7Q2MX")
func GenerateCode() (string, error) {
	return gonanoid.Generate(codeCharacters, codeLength)
}
