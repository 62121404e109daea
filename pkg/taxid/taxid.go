// Package taxid normaliza y valida identificadores fiscales brasileños (CPF y CNPJ).
package taxid

import "fmt"

const (
	// CPFLength cantidad de dígitos de un CPF (persona física).
	CPFLength = 11
	// CNPJLength cantidad de dígitos de un CNPJ (persona jurídica).
	CNPJLength = 14
)

// pesos módulo 11 de la Receita Federal. El CPF usa pesos decrecientes desde 10/11;
// el CNPJ usa la secuencia 5..2,9..2 (primer dígito) y 6..2,9..2 (segundo dígito).
var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize deja solo los dígitos ASCII del identificador.
// "359.489.811-34" → "35948981134"; "12.345.678/0001-95" → "12345678000195".
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; '0' <= c && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}

// Validate comprueba los dígitos verificadores de un CPF o CNPJ (con o sin máscara).
// Solo se usa para diagnóstico: el directorio de Omie es la autoridad final.
func Validate(s string) error {
	digits := Normalize(s)
	switch len(digits) {
	case CPFLength:
		return validateCPF(digits)
	case CNPJLength:
		return validateCNPJ(digits)
	default:
		return fmt.Errorf("taxid: se esperaban %d (CPF) o %d (CNPJ) dígitos, se encontraron %d",
			CPFLength, CNPJLength, len(digits))
	}
}

func validateCPF(d string) error {
	if allSame(d) {
		return fmt.Errorf("taxid: CPF con dígitos repetidos")
	}
	first := cpfDigit(d[:9], 10)
	second := cpfDigit(d[:10], 11)
	if d[9] != first || d[10] != second {
		return fmt.Errorf("taxid: dígito verificador de CPF inválido: esperado %c%c, recibido %s",
			first, second, d[9:])
	}
	return nil
}

func cpfDigit(base string, startWeight int) byte {
	var sum int
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * (startWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return byte('0' + rest)
}

func validateCNPJ(d string) error {
	if allSame(d) {
		return fmt.Errorf("taxid: CNPJ con dígitos repetidos")
	}
	first := cnpjDigit(d[:12], cnpjWeights1)
	second := cnpjDigit(d[:13], cnpjWeights2)
	if d[12] != first || d[13] != second {
		return fmt.Errorf("taxid: dígito verificador de CNPJ inválido: esperado %c%c, recibido %s",
			first, second, d[12:])
	}
	return nil
}

func cnpjDigit(base string, weights []int) byte {
	var sum int
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + (11 - rest))
}

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
