package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/config"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/pathutil"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/ui"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/store"
)

const (
	noRecordsMsg = "No history found for the specified filters"
	dateFormat   = "Jan 02, 2006 03:04 PM"
)

// sortRecords orders records by time, or naturally by title so that
// "Lesson 2" comes before "Lesson 10".
func sortRecords(records []*store.Record, by string) {
	if by != "title" {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Time.Before(records[j].Time)
		})

		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		return natural.Less(records[i].Title, records[j].Title)
	})
}

// printRecordsTable prints a history table.
func printRecordsTable(w io.Writer, records []*store.Record) {
	tableBody := make([][]string, 0, len(records)+1)

	tableBody = append(tableBody, []string{
		"#", "DATE", "KIND", "TITLE", "VIDEO", "QUESTIONS", "FILE",
	})

	for i, r := range records {
		kind := ui.Blue(string(r.Kind))
		questions := strconv.Itoa(r.Questions)

		if r.Kind == store.KindPlayback {
			kind = ui.Green(string(r.Kind))
			questions = fmt.Sprintf("%d/%d", r.Answered, r.Questions)
		}

		title := r.Title
		if r.Trimmed {
			title += " (trimmed)"
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(i + 1),
			r.Time.Local().Format(dateFormat),
			kind,
			title,
			r.VideoID,
			questions,
			r.Path,
		})
	}

	ui.PrintTable(tableBody, w)
}

// historyRecords returns the records matching the command-line filters.
func historyRecords(ctx *cli.Context) (*config.Config, store.DB, []*store.Record, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, nil, err
	}

	records, err := db.GetRecords(cfg.CLI.Since, store.Kind(cfg.CLI.Kind))
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	return cfg, db, records, nil
}

// historyAction handles the history command and prints the exports and
// playthroughs made within a time period.
func historyAction(ctx *cli.Context) error {
	cfg, db, records, err := historyRecords(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sortRecords(records, cfg.CLI.Sort)

	if cfg.CLI.JSON {
		b, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(config.Stdout, records)

	return nil
}

// deleteHistoryAction handles the history delete command. It requests for
// confirmation before proceeding with the operation.
func deleteHistoryAction(ctx *cli.Context) error {
	_, db, records, err := historyRecords(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(config.Stdout, records)

	warning := pterm.Warning.Sprint(
		"The above entries will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(config.Stdout, warning)

	reader := bufio.NewReader(config.Stdin)

	_, _ = reader.ReadString('\n')

	return db.DeleteRecords(records)
}
