// Command hashkey prints the argon2id hash to configure as operator.key_hash
// (CSG_OPERATOR_KEY_HASH). The key is read from the first argument, or from
// stdin when no argument is given.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"cybersource-gateway/internal/service"
)

func main() {
	key, err := readKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading key: %v\n", err)
		os.Exit(1)
	}

	hash, err := service.NewArgon2HashService().Hash(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashing key: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readKey() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
