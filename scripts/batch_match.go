package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"cvmatcher/internal/config"
	"cvmatcher/internal/embedding"
	"cvmatcher/internal/matcher"
	"cvmatcher/internal/services"
)

// Batch scorer: matches one CV file against one or more JD files without
// going through the HTTP layer. Useful for spot-checking the model against
// local documents.
func main() {
	cvPath := flag.String("cv", "", "path to the CV file (pdf, docx or txt)")
	jdPaths := flag.String("jd", "", "comma-separated paths to JD files")
	flag.Parse()

	if *cvPath == "" || *jdPaths == "" {
		log.Fatal("❌ Both -cv and -jd are required")
	}

	log.Println("🚀 Starting batch match...")

	cfg := config.Load()

	gemini, err := embedding.NewGeminiProvider(cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding provider: %v", err)
	}
	embedder := embedding.NewMemoryCache(gemini)

	regModel, err := matcher.LoadLinearModel(cfg.Matcher.RegressionModelPath)
	if err != nil {
		log.Fatalf("❌ Failed to load regression model: %v", err)
	}

	engine, err := matcher.NewEngine(embedder, regModel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize scoring engine: %v", err)
	}

	extractor := services.NewTextExtractorService()

	log.Printf("📄 Extracting CV: %s", *cvPath)
	cvText, err := extractor.ExtractFile(*cvPath)
	if err != nil {
		log.Fatalf("❌ Failed to extract CV text: %v", err)
	}

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for _, jdPath := range strings.Split(*jdPaths, ",") {
		jdPath = strings.TrimSpace(jdPath)
		if jdPath == "" {
			continue
		}

		log.Printf("\n📄 Scoring against: %s", jdPath)

		jdText, err := extractor.ExtractFile(jdPath)
		if err != nil {
			log.Printf("   ❌ Failed to extract JD text: %v", err)
			failCount++
			continue
		}

		record, err := engine.Score(ctx, cvText, jdText)
		if err != nil {
			log.Printf("   ❌ Scoring failed: %v", err)
			failCount++
			continue
		}

		log.Printf("   📊 skill: %.2f%%  experience: %.2f%%  education: %.2f%%",
			record.SkillMatch, record.ExperienceMatch, record.EducationMatch)
		log.Printf("   📊 semantic: %.2f%%  overall: %.2f%%",
			record.SemanticSimilarity, record.OverallMatch)
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Batch Summary: ✅ %d scored, ❌ %d failed", successCount, failCount)
	log.Println(strings.Repeat("=", 60))
}
