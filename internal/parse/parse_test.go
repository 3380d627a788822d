package parse

import (
	"testing"

	"github.com/albapepper/footscout/internal/domain"
)

const samplePage = `
<html><body>
<table id="stats_standard_dom_lg">
<thead><tr><th data-stat="games">MP</th></tr></thead>
<tbody>
<tr class="thead"><th data-stat="games">MP</th></tr>
<tr><td data-stat="games">10</td><td data-stat="goals">3</td><td data-stat="xg">1.50</td><td data-stat="assists"></td></tr>
<tr><td data-stat="games">8</td><td data-stat="goals">1,200</td></tr>
</tbody>
</table>
<!--
<table id="stats_shooting_cup_intl">
<tbody>
<tr><td data-stat="shots">5</td></tr>
</tbody>
</table>
-->
</body></html>
`

func TestParseExtractsVisibleTable(t *testing.T) {
	out, err := Parse(samplePage, []string{"stats_standard_dom_lg"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rows, ok := out["stats_standard_dom_lg"]
	if !ok {
		t.Fatal("expected stats_standard_dom_lg rows")
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 data rows (thead row skipped), got %d", len(rows))
	}
	if rows[0]["games"].Int() != 10 || rows[0]["goals"].Int() != 3 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if f, ok := rows[0]["xg"].Float(); !ok || f != 1.5 {
		t.Fatalf("expected xg=1.5, got %v ok=%v", f, ok)
	}
	if !rows[0]["assists"].IsNull {
		t.Fatal("expected empty cell to parse as null")
	}
}

func TestParseStripsThousandsSeparator(t *testing.T) {
	out, err := Parse(samplePage, []string{"stats_standard_dom_lg"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rows := out["stats_standard_dom_lg"]
	if rows[1]["goals"].Int() != 1200 {
		t.Fatalf("expected comma-separated 1,200 parsed as 1200, got %d", rows[1]["goals"].Int())
	}
}

func TestParseUncommentsHiddenTable(t *testing.T) {
	out, err := Parse(samplePage, []string{"stats_shooting_cup_intl"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rows, ok := out["stats_shooting_cup_intl"]
	if !ok || len(rows) != 1 {
		t.Fatalf("expected the commented-out table to be extracted, got %v", out)
	}
	if rows[0]["shots"].Int() != 5 {
		t.Fatalf("unexpected shots value: %+v", rows[0])
	}
}

func TestParseAbsentTableYieldsNoEntry(t *testing.T) {
	out, err := Parse(samplePage, []string{"stats_standard_nat_tm"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := out["stats_standard_nat_tm"]; ok {
		t.Fatal("expected no entry for an absent table")
	}
}

func TestTableIDBuildsSourceSiteConvention(t *testing.T) {
	got := TableID(domain.KindStandard, domain.SectionDomesticLeague)
	if got != "stats_standard_dom_lg" {
		t.Fatalf("TableID = %q, want stats_standard_dom_lg", got)
	}
}

func TestAllTableIDsCoversEveryKindAndSection(t *testing.T) {
	ids := AllTableIDs()
	if len(ids) != 16 {
		t.Fatalf("expected 4 kinds x 4 sections = 16 table ids, got %d", len(ids))
	}
}
