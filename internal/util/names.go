package util

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mrsinham/anamnese/internal/intake"
)

// Package-level default RNG to avoid allocations when rng is nil
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// CompoundSurnameProbability is the probability (0.0-1.0) of generating a
// name with two surnames, as is common in Brazil.
const CompoundSurnameProbability = 0.40

var (
	// MaleFirstNames is the list of Brazilian male first names
	MaleFirstNames = []string{
		"João", "Pedro", "Lucas", "Gabriel", "Mateus", "Rafael", "Gustavo", "Felipe",
		"Bruno", "Thiago", "Rodrigo", "Carlos", "Eduardo", "Marcelo", "Leonardo", "André",
		"Daniel", "Diego", "Fernando", "Ricardo", "Vinícius", "Henrique", "Caio", "Otávio",
		"Samuel", "Miguel", "Arthur", "Davi", "Heitor", "Bernardo", "Enzo", "Lorenzo",
		"Paulo", "Marcos", "Antônio", "José", "Luiz", "Renato", "Fábio", "Sérgio",
	}

	// FemaleFirstNames is the list of Brazilian female first names
	FemaleFirstNames = []string{
		"Ana", "Maria", "Juliana", "Fernanda", "Camila", "Beatriz", "Larissa", "Mariana",
		"Gabriela", "Amanda", "Letícia", "Patrícia", "Aline", "Bruna", "Carolina", "Débora",
		"Isabela", "Luana", "Natália", "Priscila", "Renata", "Tatiane", "Vanessa", "Yasmin",
		"Helena", "Alice", "Laura", "Manuela", "Valentina", "Sofia", "Lívia", "Cecília",
		"Cláudia", "Simone", "Adriana", "Luciana", "Márcia", "Sandra", "Rosana", "Elaine",
	}

	// LastNames is the list of Brazilian surnames
	LastNames = []string{
		"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira",
		"Lima", "Gomes", "Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes",
		"Soares", "Fernandes", "Vieira", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade",
		"Moreira", "Nunes", "Marques", "Machado", "Mendes", "Freitas", "Cardoso", "Ramos",
		"Gonçalves", "Santana", "Teixeira", "Araújo", "Moura", "Cavalcanti", "Monteiro", "Correia",
	}

	// phoneAreaCodes are common Brazilian DDD codes
	phoneAreaCodes = []int{11, 21, 31, 41, 47, 48, 51, 61, 71, 81, 85, 91}

	emailDomains = []string{"gmail.com", "hotmail.com", "outlook.com", "yahoo.com.br", "uol.com.br"}
)

// GenerateFullName generates a realistic Brazilian name for gender.
// Names have two surnames 40% of the time.
//
// Any gender other than masculino picks from both first-name lists.
// If rng is nil, uses shared default RNG.
func GenerateFullName(gender intake.Gender, rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	var firstName string
	switch gender {
	case intake.GenderMale:
		firstName = MaleFirstNames[rng.IntN(len(MaleFirstNames))]
	case intake.GenderFemale:
		firstName = FemaleFirstNames[rng.IntN(len(FemaleFirstNames))]
	default:
		all := append(append([]string{}, MaleFirstNames...), FemaleFirstNames...)
		firstName = all[rng.IntN(len(all))]
	}

	lastName := LastNames[rng.IntN(len(LastNames))]
	if rng.Float64() < CompoundSurnameProbability {
		middle := LastNames[rng.IntN(len(LastNames))]
		if middle != lastName {
			lastName = middle + " " + lastName
		}
	}

	return firstName + " " + lastName
}

// GenerateEmail derives a lowercase address from a full name.
func GenerateEmail(fullName string, rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	parts := strings.Fields(stripAccents(strings.ToLower(fullName)))
	local := "paciente"
	if len(parts) > 0 {
		local = parts[0]
		if len(parts) > 1 {
			local += "." + parts[len(parts)-1]
		}
	}
	return local + "@" + emailDomains[rng.IntN(len(emailDomains))]
}

// GeneratePhone returns a mobile number in the "(DD) 9XXXX-XXXX" format.
func GeneratePhone(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	ddd := phoneAreaCodes[rng.IntN(len(phoneAreaCodes))]
	return fmt.Sprintf("(%d) 9%04d-%04d", ddd, rng.IntN(10000), rng.IntN(10000))
}

// GenerateBirthDate returns an ISO date for an adult between 18 and 70.
func GenerateBirthDate(now time.Time, rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	age := 18 + rng.IntN(53)
	days := rng.IntN(365)
	return now.AddDate(-age, 0, -days).Format(time.DateOnly)
}

// stripAccents removes combining marks so "Conceição" becomes "Conceicao".
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
