package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verseforge/conmarkov/constraint"
	"github.com/verseforge/conmarkov/markov"
	"github.com/verseforge/conmarkov/nhmm"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Train on a corpus and generate constrained sentences",
		RunE:  runGenerate,
	}

	cmd.Flags().String("corpus", "", "training corpus file, one sentence per line (required)")
	cmd.Flags().Int("length", 0, "required sentence length in words (required)")
	cmd.Flags().Int("order", 1, "markov order (lookahead distance)")
	cmd.Flags().Int("count", 1, "number of sentences to generate")
	cmd.Flags().Int64("seed", 0, "random seed (0 = fixed default)")
	cmd.Flags().StringSlice("require", nil, "required word at a position, as pos=word (repeatable)")
	cmd.Flags().StringSlice("forbid", nil, "forbidden adjacent pair, as from,to (repeatable)")
	_ = cmd.MarkFlagRequired("corpus")
	_ = cmd.MarkFlagRequired("length")

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		log.WithError(err).Fatal("failed to bind flags")
	}
	return cmd
}

func runGenerate(_ *cobra.Command, _ []string) error {
	length := viper.GetInt("length")
	order := viper.GetInt("order")
	if order <= 0 || length <= 0 || length%order != 0 {
		return fmt.Errorf("length %d must be a positive multiple of order %d", length, order)
	}

	sequences, err := loadCorpus(viper.GetString("corpus"))
	if err != nil {
		return err
	}
	log.WithField("sequences", len(sequences)).Debug("corpus loaded")

	base, err := markov.New(order)
	if err != nil {
		return err
	}
	if err = base.Train(sequences); err != nil {
		return fmt.Errorf("training base model: %w", err)
	}

	cons, err := buildConstraint(length / order)
	if err != nil {
		return err
	}

	model := nhmm.New()
	if err = model.Train(base, cons); err != nil {
		return fmt.Errorf("training constrained model: %w", err)
	}

	opts := nhmm.Options{
		SequenceCount: viper.GetInt("count"),
		Seed:          viper.GetInt64("seed"),
		Debug:         viper.GetBool("debug"),
	}
	if opts.Debug {
		log.WithFields(logrus.Fields{
			"order":          model.Order(),
			"sentenceLength": model.SentenceLength(),
			"matrixSizes":    model.MatrixSizes(),
			"solutionCount":  model.TotalSolutionCount(),
		}).Debug("model trained")
	}

	sentences, err := model.GenerateSentences(opts)
	if err != nil {
		return err
	}
	for _, words := range sentences {
		fmt.Println(strings.Join(words, " "))
	}
	return nil
}

// buildConstraint assembles the constraint from the require/forbid
// flags: a Lexical skeleton of wildcards with required literals filled
// in, optionally wrapped with forbidden adjacent pairs.
func buildConstraint(positions int) (constraint.Constraint, error) {
	tokens := make([]string, positions)
	for i := range tokens {
		tokens[i] = constraint.Wildcard
	}
	for _, req := range viper.GetStringSlice("require") {
		pos, word, ok := strings.Cut(req, "=")
		if !ok || word == "" {
			return nil, fmt.Errorf("bad --require %q: want pos=word", req)
		}
		n, err := strconv.Atoi(pos)
		if err != nil || n < 0 || n >= positions {
			return nil, fmt.Errorf("bad --require position %q: want 0..%d", pos, positions-1)
		}
		tokens[n] = word
	}
	cons, err := constraint.Lexical(tokens...)
	if err != nil {
		return nil, err
	}

	forbidden := viper.GetStringSlice("forbid")
	if len(forbidden) == 0 {
		return cons, nil
	}
	pairs := make([][2]string, 0, len(forbidden))
	for _, f := range forbidden {
		from, to, ok := strings.Cut(f, ",")
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("bad --forbid %q: want from,to", f)
		}
		pairs = append(pairs, [2]string{from, to})
	}
	return constraint.Forbid(cons, pairs...)
}

// loadCorpus reads one whitespace-tokenized sentence per line.
func loadCorpus(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	var sequences [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if words := strings.Fields(scanner.Text()); len(words) > 0 {
			sequences = append(sequences, words)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return sequences, nil
}
