package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/ledger"
	"backend/models"
	"backend/utils"

	"github.com/shopspring/decimal"
)

type ProfileInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Birthday       string `json:"birthday"` // sent as YYYY-MM-DD
	Sex            string `json:"sex"`
	Height         string `json:"height"` // cm, decimal string
	Weight         string `json:"weight"` // kg, decimal string
	BodyFatPct     string `json:"body_fat_pct,omitempty"`
	ActivityLevel  string `json:"activity_level"`
	FitnessGoals   string `json:"fitness_goals"`
	ProfilePicture string `json:"profile_picture"`
	Onboarded      bool   `json:"onboarded"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	return map[string]interface{}{
		"id":              user.ID,
		"user_id":         user.UserID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"birthday":        user.Birthday.Format("2006-01-02"),
		"age":             age,
		"sex":             user.Sex,
		"height":          user.HeightCm,
		"weight":          user.WeightKg,
		"body_fat_pct":    user.BodyFatPct,
		"activity_level":  user.ActivityLevel,
		"fitness_goals":   user.FitnessGoals,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
	}, nil
}

// GetUserMetabolics reports the baseline currently in force: BMR (formula
// picked by body-fat availability), TDEE and BMI.
func GetUserMetabolics(email string, cfg ledger.Config) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}
	if user.WeightKg.IsZero() || user.Birthday.IsZero() {
		return nil, errors.New("profile incomplete: weight and birthday are required")
	}

	age := utils.CalculateAge(user.Birthday)
	bmr := ledger.ComputeBMR(user.WeightKg, user.HeightCm, age, ledger.Sex(user.Sex), user.BodyFatPct)
	tdee := cfg.ComputeTDEE(bmr, ledger.ActivityLevel(user.ActivityLevel))

	out := map[string]interface{}{
		"bmr":     bmr.Round(1),
		"tdee":    tdee.Round(1),
		"formula": "mifflin_st_jeor",
	}
	if user.BodyFatPct != nil {
		out["formula"] = "katch_mcardle"
	}

	h, _ := user.HeightCm.Float64()
	w, _ := user.WeightKg.Float64()
	if bmi, err := utils.CalculateBMI(h, w); err == nil {
		out["bmi"] = fmt.Sprintf("%.1f", bmi)
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	return out, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}

	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}

	if input.Sex != "" {
		if input.Sex != string(ledger.Male) && input.Sex != string(ledger.Female) {
			return errors.New("sex must be male or female")
		}
		user.Sex = input.Sex
	}
	if input.Height != "" {
		h, err := decimal.NewFromString(input.Height)
		if err != nil || h.LessThanOrEqual(decimal.Zero) {
			return errors.New("invalid height")
		}
		user.HeightCm = h
	}
	if input.Weight != "" {
		w, err := decimal.NewFromString(input.Weight)
		if err != nil || w.LessThanOrEqual(decimal.Zero) {
			return errors.New("invalid weight")
		}
		user.WeightKg = w
	}
	if input.BodyFatPct != "" {
		bf, err := decimal.NewFromString(input.BodyFatPct)
		if err != nil || bf.IsNegative() || bf.GreaterThan(decimal.NewFromInt(100)) {
			return errors.New("invalid body fat percent")
		}
		user.BodyFatPct = &bf
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.FitnessGoals != "" {
		user.FitnessGoals = input.FitnessGoals
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profile-pictures/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

func CompleteUserOnboarding(
	email string,
	birthday time.Time,
	sex string,
	heightCm, weightKg decimal.Decimal,
	bodyFatPct *decimal.Decimal,
	activityLevel string,
	fitnessGoals string,
	profilePictureBase64 string,
	mfaEnabled bool,
) error {
	var user models.User
	if err := config.DB.
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	user.Birthday = birthday
	user.Sex = sex
	user.HeightCm = heightCm
	user.WeightKg = weightKg
	user.BodyFatPct = bodyFatPct
	user.ActivityLevel = activityLevel
	user.FitnessGoals = fitnessGoals
	user.MFAEnabled = mfaEnabled

	if profilePictureBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(profilePictureBase64, "onboarding/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = true

	return config.DB.Save(&user).Error
}
