package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

const bannerText = `
 ___  __ _ | | __ _  _ __  _   _  __| |  __ _  ___ | |__
/ __|/ _' || |/ _' || '__|| | | |/ _' | / _' |/ __|| '_ \
\__ \ (_| || | (_| || |   | |_| | (_| || (_| |\__ \| | | |
|___/\__,_||_|\__,_||_|    \__, |\__,_| \__,_||___/|_| |_|
                           |___/
 @fr4nk3nst1ner
`

// ColorizeText fades the text between two random colors.
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := max(len(chars)/2, 1)

	var b strings.Builder
	for i, c := range chars {
		b.WriteString(startColor.Fade(0, float32(len(chars)), float32(i%half), endColor).Sprint(c))
	}
	return b.String()
}

// PrintBanner displays the application banner unless silenced.
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// ColorizeSalary formats a salary and colors it by band.
func ColorizeSalary(salary float64) string {
	formatted := utils.FormatMoney(salary)
	switch {
	case salary >= 200000:
		return pterm.Green(formatted)
	case salary >= 150000:
		return pterm.LightGreen(formatted)
	case salary >= 75000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
