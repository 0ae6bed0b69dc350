// Imports a quiz catalog from an Excel workbook: one sheet per theme,
// one row per question with four options and the correct option index.
//
// Usage: go run ./scripts/import_questions catalog.xlsx
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mroshb/quiz_bot/internal/models"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: import_questions <catalog.xlsx>")
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	totalImported := 0

	for _, sheetName := range f.GetSheetList() {
		fmt.Printf("Importing sheet: %s\n", sheetName)

		theme, err := findOrCreateTheme(db, sheetName)
		if err != nil {
			fmt.Printf("Error creating theme %s: %v\n", sheetName, err)
			continue
		}

		rows, err := f.GetRows(sheetName)
		if err != nil {
			fmt.Printf("Error reading sheet %s: %v\n", sheetName, err)
			continue
		}

		for i, row := range rows {
			if i == 0 || len(row) < 6 { // Skip header or invalid rows
				continue
			}

			// row[0]: Question Text
			// row[1..4]: Options
			// row[5]: 1-based index of the correct option

			title := strings.TrimSpace(row[0])
			options := []string{row[1], row[2], row[3], row[4]}

			correctIdx, err := strconv.Atoi(strings.TrimSpace(row[5]))
			if err != nil || correctIdx < 1 || correctIdx > len(options) {
				fmt.Printf("Invalid correct answer index %q in row %d\n", row[5], i)
				continue
			}

			var existing models.Question
			if err := db.Where("title = ?", title).First(&existing).Error; err == nil {
				continue
			}

			answers := make([]models.Answer, 0, len(options))
			for j, opt := range options {
				answers = append(answers, models.Answer{
					Title:     strings.TrimSpace(opt),
					IsCorrect: j == correctIdx-1,
				})
			}

			question := models.Question{
				Title:   title,
				ThemeID: theme.ID,
				Answers: answers,
			}
			if err := db.Create(&question).Error; err != nil {
				fmt.Printf("Error creating question in row %d: %v\n", i, err)
				continue
			}
			totalImported++
		}
	}

	fmt.Printf("Done. Imported %d questions.\n", totalImported)
}

func findOrCreateTheme(db *gorm.DB, title string) (*models.Theme, error) {
	var theme models.Theme
	if err := db.Where("title = ?", title).First(&theme).Error; err == nil {
		return &theme, nil
	}

	theme = models.Theme{Title: strings.TrimSpace(title)}
	if err := db.Create(&theme).Error; err != nil {
		return nil, err
	}
	return &theme, nil
}
