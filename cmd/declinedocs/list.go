package main

import (
	"fmt"
	"slices"
	"strings"

	declinecodes "github.com/hideokamoto/stripe-decline-codes"
	"github.com/spf13/cobra"
)

var (
	listLocale   string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every decline code with its category and customer message",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listLocale, "locale", "l", string(declinecodes.DefaultLocale), "message locale")
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category (hard or soft)")
}

func runList(cmd *cobra.Command, args []string) error {
	locale := declinecodes.Locale(listLocale)
	if listLocale != "" && !slices.Contains(declinecodes.SupportedLocales(), locale) {
		return fmt.Errorf("unsupported locale %q (supported: %s)", listLocale, supportedLocaleNames())
	}

	var filter declinecodes.Category
	switch strings.ToLower(listCategory) {
	case "":
	case "hard":
		filter = declinecodes.CategoryHardDecline
	case "soft":
		filter = declinecodes.CategorySoftDecline
	default:
		return fmt.Errorf("unknown category %q (want hard or soft)", listCategory)
	}

	out := cmd.OutOrStdout()
	for _, code := range declinecodes.GetAllDeclineCodes() {
		category, _ := declinecodes.GetDeclineCategory(code)
		if filter != "" && category != filter {
			continue
		}
		message, _ := declinecodes.GetDeclineMessage(code, locale)
		fmt.Fprintf(out, "%-34s %-13s %s\n", code, category, message)
	}
	return nil
}

func supportedLocaleNames() string {
	locales := declinecodes.SupportedLocales()
	names := make([]string, 0, len(locales))
	for _, locale := range locales {
		names = append(names, string(locale))
	}
	return strings.Join(names, ", ")
}
