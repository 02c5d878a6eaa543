package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
)

func main() {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}
	encoded := base64.StdEncoding.EncodeToString(key)

	fmt.Println("=================================================")
	fmt.Println("  JWT Signing Key (HS256)")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("Generated key (base64):")
	fmt.Println(encoded)
	fmt.Println()
	fmt.Println("Add this to your config/private.yaml:")
	fmt.Printf("jwt_key: \"%s\"\n", encoded)
	fmt.Println()
	fmt.Println("IMPORTANT:")
	fmt.Println("- Keep this key secret and secure!")
	fmt.Println("- Rotating it invalidates every outstanding token!")
	fmt.Println("- Never commit this key to version control!")
	fmt.Println("=================================================")
}
