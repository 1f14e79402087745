//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const (
	// a single opinion can run to hundreds of KB; default scanner buffer (64K) will not do
	MAXLINEBYTES = 16 * 1024 * 1024
)

//
// RECORDS: one newline-delimited JSON record per decided case
//

type Opinion struct {
	Text string `json:"text"`
}

type Court struct {
	Name string `json:"name"`
}

type Casebody struct {
	Data struct {
		Opinions []Opinion `json:"opinions"`
	} `json:"data"`
}

type Record struct {
	DecisionDate     string   `json:"decision_date"`
	NameAbbreviation string   `json:"name_abbreviation"`
	Court            Court    `json:"court"`
	Casebody         Casebody `json:"casebody"`
}

// Document - one modelable item: a case with non-empty opinion text
type Document struct {
	Label        string
	DecisionDate string
	Court        string
	RawText      string
	NormText     string
}

// LoadRecords - read up to max records from a newline-delimited JSON file; gzip input is detected by magic bytes
func LoadRecords(path string, max int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadRecords() cannot open '%s': %w", path, err)
	}
	defer f.Close()

	var rd io.Reader
	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, e := gzip.NewReader(br)
		if e != nil {
			return nil, fmt.Errorf("LoadRecords() cannot decompress '%s': %w", path, e)
		}
		defer gz.Close()
		rd = gz
	} else {
		rd = br
	}

	var recs []Record

	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), MAXLINEBYTES)
	ln := 0
	for scanner.Scan() {
		ln += 1
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var r Record
		if e := json.Unmarshal(line, &r); e != nil {
			// no partial results: a corrupt corpus is a fatal condition
			return nil, fmt.Errorf("LoadRecords() bad JSON on line %d of '%s': %w", ln, path, e)
		}
		recs = append(recs, r)
		if max > 0 && len(recs) >= max {
			break
		}
	}
	if e := scanner.Err(); e != nil {
		return nil, fmt.Errorf("LoadRecords() failed reading '%s': %w", path, e)
	}

	return recs, nil
}

// BuildDocuments - normalize each record's opinion text; records without usable text contribute no Document
func BuildDocuments(recs []Record, stops map[string]struct{}) ([]Document, int) {
	docs := make([]Document, 0, len(recs))
	skipped := 0

	for i := 0; i < len(recs); i++ {
		r := recs[i]
		texts := make([]string, 0, len(r.Casebody.Data.Opinions))
		for _, op := range r.Casebody.Data.Opinions {
			if len(op.Text) > 0 {
				texts = append(texts, op.Text)
			}
		}

		raw := strings.Join(texts, " ")
		norm := Normalize(raw, stops)
		if len(norm) == 0 {
			// an absent opinion is a non-document, not an empty one
			skipped += 1
			continue
		}

		docs = append(docs, Document{
			Label:        fmt.Sprintf("%s (%s)", r.NameAbbreviation, r.DecisionDate),
			DecisionDate: r.DecisionDate,
			Court:        r.Court.Name,
			RawText:      raw,
			NormText:     norm,
		})
	}

	return docs, skipped
}
