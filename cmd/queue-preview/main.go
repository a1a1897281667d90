// Command queue-preview builds a practice queue straight from the training
// database for a learner with no history and prints it. It needs neither
// PostgreSQL nor Redis and is meant for tuning spacing options offline.
//
// Flags:
//
//	--training  path to the training SQLite database (default: $TRAINING_DB_PATH)
//	--kind      declension or conjugation (default: declension)
//	--count     queue length (default: 30)
//	--seed      seed date, YYYY-MM-DD (default: today)
//	--ranks     inclusive rank window, MIN-MAX (default: built-in window)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/palipractice-backend/internal/adapter/sqlite/training"
	"github.com/heartmarshall/palipractice-backend/internal/app"
	"github.com/heartmarshall/palipractice-backend/internal/catalog"
	"github.com/heartmarshall/palipractice-backend/internal/config"
	"github.com/heartmarshall/palipractice-backend/internal/domain"
	"github.com/heartmarshall/palipractice-backend/internal/formid"
	"github.com/heartmarshall/palipractice-backend/internal/service/practice/queue"
)

func main() {
	trainingFlag := flag.String("training", os.Getenv("TRAINING_DB_PATH"), "path to the training database")
	kindFlag := flag.String("kind", "declension", "declension or conjugation")
	countFlag := flag.Int("count", 30, "queue length")
	seedFlag := flag.String("seed", "", "seed date YYYY-MM-DD (default: today)")
	ranksFlag := flag.String("ranks", "", "rank window MIN-MAX")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})

	if *trainingFlag == "" {
		log.Fatal("--training or TRAINING_DB_PATH is required")
	}
	kind, ok := domain.ParsePracticeKind(*kindFlag)
	if !ok {
		log.Fatalf("unknown kind %q", *kindFlag)
	}

	seed := time.Now()
	if *seedFlag != "" {
		t, err := time.Parse("2006-01-02", *seedFlag)
		if err != nil {
			log.Fatalf("parse --seed: %v", err)
		}
		seed = t
	}

	settings := domain.DefaultPracticeSettings(uuid.Nil, kind)
	if *ranksFlag != "" {
		if _, err := fmt.Sscanf(*ranksFlag, "%d-%d", &settings.Ranks.Min, &settings.Ranks.Max); err != nil {
			log.Fatalf("parse --ranks: %v", err)
		}
		if !settings.Ranks.IsValid() {
			log.Fatalf("invalid rank window %d-%d", settings.Ranks.Min, settings.Ranks.Max)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cat, stats, err := training.LoadFile(ctx, *trainingFlag)
	if err != nil {
		logger.Error("load training database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("training catalog loaded",
		slog.Int("nouns", stats.Nouns),
		slog.Int("verbs", stats.Verbs),
		slog.Int("attested_forms", stats.AttestedForms),
	)

	eligible := queue.Resolve(cat, settings.Scope())
	items := queue.Build(queue.Input{
		Eligible: eligible,
		Now:      seed,
		SeedDate: seed,
		Count:    *countFlag,
		Options:  queue.DefaultOptions(),
	})
	logger.Info("queue built",
		slog.String("kind", kind.String()),
		slog.Int("eligible", len(eligible)),
		slog.Int("items", len(items)),
	)

	if err := printQueue(os.Stdout, cat, items); err != nil {
		logger.Error("print queue", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printQueue(out *os.File, cat *catalog.Catalog, items []domain.PracticeItem) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tFORM\tLEMMA\tRANK\tCOORDINATE\tIRREGULAR")
	for i, it := range items {
		lemma, _ := cat.Lemma(it.LemmaID)
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\t%v\n",
			i+1, it.FormID, lemma.Headword, lemma.Rank, coordinate(it.FormID), cat.IrregularForms(it.FormID))
	}
	return w.Flush()
}

func coordinate(id domain.FormID) string {
	if kind, _ := formid.KindOf(id); kind == domain.PracticeKindConjugation {
		c := formid.DecodeConjugation(id)
		return fmt.Sprintf("%s %s %s %s", c.Tense, c.Person, c.Number, c.Voice)
	}
	d := formid.DecodeDeclension(id)
	return fmt.Sprintf("%s %s %s", d.Case, d.Gender, d.Number)
}
