package dataset

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/dbmrq/fightsongs/internal/errors"
)

// Column names of the source file.
const (
	ColSchool        = "school"
	ColConference    = "conference"
	ColSongName      = "song_name"
	ColWriters       = "writers"
	ColYear          = "year"
	ColStudentWriter = "student_writer"
	ColOfficialSong  = "official_song"
	ColContest       = "contest"
	ColSpotifyID     = "spotify_id"
)

// RequiredColumns must all be present in the header row.
func RequiredColumns() []string {
	cols := []string{ColSchool, ColConference, ColYear, ColStudentWriter, ColContest}
	return append(cols, TropeKeys()...)
}

// Load reads the dataset at path. Any failure is fatal to startup and is
// returned as an *errors.AppError of kind errors.ErrDataset.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.DatasetNotFound(path)
		}
		return nil, errors.DatasetUnreadable(path, err)
	}
	defer f.Close()

	ds, err := parse(f, path)
	if err != nil {
		return nil, err
	}
	ds.source = path
	return ds, nil
}

// Parse reads a dataset from r. It is Load without the file handling.
func Parse(r io.Reader) (*Dataset, error) {
	return parse(r, "<input>")
}

func parse(r io.Reader, name string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.MissingColumns(name, RequiredColumns())
		}
		return nil, errors.DatasetUnreadable(name, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}

	var missing []string
	for _, c := range RequiredColumns() {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, errors.MissingColumns(name, missing)
	}

	cell := func(row []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	index := make(map[string]int)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := len(records) + 2
			var parseErr *csv.ParseError
			if stderrors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, errors.MalformedRow(name, line, err)
		}

		line, _ := reader.FieldPos(0)
		rec := Record{
			School:        cell(row, ColSchool),
			Conference:    cell(row, ColConference),
			SongName:      cell(row, ColSongName),
			Writers:       cell(row, ColWriters),
			SpotifyID:     cell(row, ColSpotifyID),
			Year:          ParseYear(cell(row, ColYear)),
			StudentWriter: ParseFlag(cell(row, ColStudentWriter)),
			OfficialSong:  ParseFlag(cell(row, ColOfficialSong)),
			Contest:       ParseFlag(cell(row, ColContest)),
			BPM:           ParseNumber(cell(row, string(AttrBPM))),
			Duration:      ParseNumber(cell(row, string(AttrDuration))),
			NumberFights:  ParseNumber(cell(row, string(AttrNumberFights))),
			TropeCount:    ParseNumber(cell(row, string(AttrTropeCount))),
		}
		for _, t := range Tropes() {
			rec.Tropes[t] = ParseFlag(cell(row, t.Key()))
		}
		if strings.EqualFold(rec.Conference, "unknown") {
			rec.Conference = ""
		}

		if rec.School == "" {
			return nil, errors.MalformedRow(name, line, stderrors.New("school is empty"))
		}
		if _, dup := index[rec.School]; dup {
			return nil, errors.DuplicateSchool(name, rec.School, line)
		}
		index[rec.School] = len(records)
		records = append(records, rec)
	}

	return &Dataset{records: records, index: index}, nil
}
