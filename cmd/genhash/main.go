// cmd/genhash/main.go — prints the bcrypt hash of a password, for ops.
// Usage: go run cmd/genhash/main.go <password>
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/Jim-flores/odontosys-bk/internal/service"
)

func main() {
	password := "admin123"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), service.BcryptCost)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
