package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/mindcheck/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const (
	minAdminPasswordLength   = 12
	generatedPasswordLength  = 20
	generatedPasswordSymbols = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

var ErrAdminPasswordTooShort = fmt.Errorf("admin password must be at least %d characters", minAdminPasswordLength)

// HashAdminPassword returns the bcrypt hash to place in ADMIN_PASSWORD_HASH.
func HashAdminPassword(password string, cost int) (string, error) {
	if len(password) < minAdminPasswordLength {
		return "", ErrAdminPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}
	return string(hash), nil
}

// RunHashPasswordCommand prompts for an admin password (or generates one) and
// prints its bcrypt hash.
func RunHashPasswordCommand(stdin *os.File, out io.Writer, generate bool) error {
	var password string
	if generate {
		generated, err := generateAdminPassword()
		if err != nil {
			return fmt.Errorf("generate admin password: %w", err)
		}
		password = generated
		fmt.Fprintf(out, "Generated admin password: %s\n", password)
	} else {
		prompted, err := promptNewPassword(stdin, out)
		if err != nil {
			return err
		}
		password = prompted
	}

	hash, err := HashAdminPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ADMIN_PASSWORD_HASH=%s\n", hash)
	return nil
}

func promptNewPassword(stdin *os.File, out io.Writer) (string, error) {
	fmt.Fprint(out, "Admin password: ")
	first, err := readSecretLine(stdin)
	if errors.Is(err, errNotTerminal) {
		// Piped input: read the password as a plain line, no confirmation.
		fmt.Fprintln(out)
		return readLine(stdin)
	}
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, "Repeat password: ")
	second, err := readSecretLine(stdin)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprintln(out)

	if first != second {
		return "", errors.New("passwords do not match")
	}
	return first, nil
}

func generateAdminPassword() (string, error) {
	return security.RandomString(generatedPasswordLength, generatedPasswordSymbols)
}
