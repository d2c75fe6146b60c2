package settings

import (
	"fmt"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/models"
	"github.com/daykeep/daykeep/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WakeTime             *string `help:"Daily wake-up alarm time (HH:MM)."`
	SummaryTime          *string `help:"Daily summary time (HH:MM)."`
	AlarmSound           *string `help:"Alarm sound name."`
	Vibration            *bool   `help:"Vibrate on notification."`
	NotificationsEnabled *bool   `help:"Enable or disable all notifications."`
	LeadMinutes          *int    `help:"Minutes before a task its reminder fires."`
	MustDoCap            *int    `help:"Max concurrent uncompleted must-do tasks."`
	Theme                *string `help:"UI theme hint."`
	Timezone             *string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Validate() error {
	if c.WakeTime != nil && !utils.ValidTime(*c.WakeTime) {
		return fmt.Errorf("invalid wake time (expected HH:MM): %q", *c.WakeTime)
	}
	if c.SummaryTime != nil && !utils.ValidTime(*c.SummaryTime) {
		return fmt.Errorf("invalid summary time (expected HH:MM): %q", *c.SummaryTime)
	}
	if c.LeadMinutes != nil && *c.LeadMinutes < 0 {
		return fmt.Errorf("lead minutes cannot be negative")
	}
	if c.MustDoCap != nil && *c.MustDoCap < 1 {
		return fmt.Errorf("must-do cap must be at least 1")
	}
	if c.Timezone != nil {
		if _, err := utils.LoadLocation(*c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	doc := ctx.Store.Document()

	if c.List {
		s := doc.Settings
		fmt.Println("Current Settings:")
		fmt.Printf("  Wake Time:             %s\n", s.WakeTime)
		fmt.Printf("  Summary Time:          %s\n", s.SummaryTime)
		fmt.Printf("  Alarm Sound:           %s\n", s.AlarmSound)
		fmt.Printf("  Vibration:             %v\n", s.Vibration)
		fmt.Printf("  Notifications Enabled: %v\n", s.NotificationsEnabled)
		fmt.Printf("  Lead Minutes:          %d\n", s.LeadMinutes)
		fmt.Printf("  Must-Do Cap:           %d\n", s.MustDoCap)
		fmt.Printf("  Theme:                 %s\n", s.Theme)
		fmt.Printf("  Timezone:              %s\n", s.Timezone)
		return nil
	}

	patch := models.SettingsPatch{
		WakeTime:             c.WakeTime,
		SummaryTime:          c.SummaryTime,
		AlarmSound:           c.AlarmSound,
		Vibration:            c.Vibration,
		NotificationsEnabled: c.NotificationsEnabled,
		LeadMinutes:          c.LeadMinutes,
		MustDoCap:            c.MustDoCap,
		Theme:                c.Theme,
		Timezone:             c.Timezone,
	}
	if !patch.Apply(&doc.Settings) {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.Save(); err != nil {
		return err
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
