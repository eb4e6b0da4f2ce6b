package engine

import (
	"math"

	"github.com/dpavliga/lifeledger/internal/models"
)

// BMI bands per the WHO adult cut-offs.
const (
	BMIUnderweight = "underweight"
	BMIHealthy     = "healthy"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

// BMI computes body mass index from height in centimetres and weight in
// kilograms, rounded to one decimal. Non-positive inputs yield a zero result
// with no band.
func BMI(heightCm, weightKg float64) models.BMIResult {
	if heightCm <= 0 || weightKg <= 0 {
		return models.BMIResult{}
	}
	m := heightCm / 100.0
	bmi := math.Round(weightKg/(m*m)*10) / 10

	band := BMIObese
	switch {
	case bmi < 18.5:
		band = BMIUnderweight
	case bmi < 25:
		band = BMIHealthy
	case bmi < 30:
		band = BMIOverweight
	}
	return models.BMIResult{BMI: bmi, Band: band}
}
