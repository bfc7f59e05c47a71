package constants

const (
	// Achievement IDs
	AchievementFirstTask    = "first_task"
	AchievementPerfectDay   = "perfect_day"
	AchievementWeekStreak   = "week_streak"
	AchievementEnergyMaster = "energy_master"
	AchievementEarlyBird    = "early_bird"
	AchievementNightOwl     = "night_owl"

	// Achievement thresholds
	EarlyBirdBeforeHour   = 8
	NightOwlFromHour      = 22
	EnergyMasterThreshold = 1000
	WeekStreakDays        = 7

	// Hour bounds for scheduling
	MinHour = 0
	MaxHour = 23

	// Quick add defaults
	QuickAddEnergy      = 20
	QuickAddDurationMin = 30
	QuickAddCategory    = "work"

	// Default Settings Values
	DefaultDailyCapacity    = 100
	DefaultTheme            = "default"
	DefaultWorkingHourStart = 9
	DefaultWorkingHourEnd   = 17
	DefaultCategoryColor    = "#94a3b8"

	// Onboarding capacity slider
	MinOnboardingCapacity  = 50
	MaxOnboardingCapacity  = 150
	OnboardingCapacityStep = 10
)
