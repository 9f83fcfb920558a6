package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fretmap/fretmap/quiz"
)

var quizFlags struct {
	count int
	seed  int64
}

func init() {
	quizCmd.Flags().IntVarP(&quizFlags.count, "count", "n", 10, "number of questions")
	quizCmd.Flags().Int64Var(&quizFlags.seed, "seed", 0, "question seed (0 = time-based)")
	rootCmd.AddCommand(quizCmd)
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Runs a theory quiz generated from the catalogs",
	Long:  `Runs a theory quiz generated from the catalogs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz()
	},
}

func runQuiz() error {
	seed := quizFlags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := quiz.NewGenerator(seed)
	reader := bufio.NewReader(os.Stdin)

	var correct int
	for i := 0; i < quizFlags.count; i++ {
		q, err := gen.Random()
		if err != nil {
			return err
		}
		fmt.Printf("\n%v) %v\n", i+1, q.Prompt)
		for j, choice := range q.Choices {
			fmt.Printf("   %v. %v\n", j+1, choice)
		}
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		pick, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || pick < 1 || pick > len(q.Choices) {
			fmt.Println("skipped")
			continue
		}
		if q.Choices[pick-1] == q.Answer {
			correct++
			fmt.Println("correct")
		} else {
			fmt.Printf("nope, it was: %v\n", q.Answer)
		}
	}
	fmt.Printf("\n%v/%v\n", correct, quizFlags.count)
	return nil
}
