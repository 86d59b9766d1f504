package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short alphanumeric identifier for brands,
// categories and prompts.
func GenerateID() string {
	id, _ := gonanoid.Generate(characters, 6)
	return id
}

// GenerateResponseID returns a longer identifier for response records.
func GenerateResponseID() string {
	id, _ := gonanoid.Generate(characters, 12)
	return id
}
