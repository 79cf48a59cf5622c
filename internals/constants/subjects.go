package constants

import "strings"

// Daftar mata pelajaran per group (kurikulum intermediate).
// THM/OAS/MPHW memakai paket vocational yang sama.
var (
	SubjectsMPC        = []string{"english", "telugu_hindi", "math_a", "math_b", "physics", "chemistry"}
	SubjectsBiPC       = []string{"english", "telugu_hindi", "botany", "zoology", "physics", "chemistry"}
	SubjectsCEC        = []string{"english", "telugu_hindi", "political_science", "economics", "commerce"}
	SubjectsHEC        = []string{"english", "telugu_hindi", "history", "economics", "commerce"}
	SubjectsVocational = []string{"english", "gfc", "voc1", "voc2", "voc3"}
)

// SubjectsForGroup mengembalikan daftar subject untuk group tertentu,
// nil kalau group tidak dikenal.
func SubjectsForGroup(group string) []string {
	switch strings.ToUpper(strings.TrimSpace(group)) {
	case "MPC":
		return SubjectsMPC
	case "BIPC":
		return SubjectsBiPC
	case "CEC":
		return SubjectsCEC
	case "HEC":
		return SubjectsHEC
	case "THM", "OAS", "MPHW":
		return SubjectsVocational
	default:
		return nil
	}
}
