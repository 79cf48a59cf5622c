// file: internals/features/school/exams/service/exam_calc.go
package service

import "math"

// MaxMarksPerSubject: setiap subject dinilai dari 100.
const MaxMarksPerSubject = 100

// CalcExamStats menghitung total marks dan persentase dari map subject→marks.
func CalcExamStats(subjects map[string]int) (totalMarks int, percentage float64) {
	for _, marks := range subjects {
		totalMarks += marks
	}
	maxPossible := len(subjects) * MaxMarksPerSubject
	if maxPossible == 0 {
		return 0, 0
	}
	percentage = math.Round(float64(totalMarks)/float64(maxPossible)*100*100) / 100
	return totalMarks, percentage
}
