package xlsx

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
	"github.com/xuri/excelize/v2"
)

func TestReadWriteSheet(t *testing.T) {
	data := models.Table{
		{"Name", "Count"},
		{"alpha", "10"},
		{"beta", "20"},
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := WriteSheet(tmpFile, "Data", data); err != nil {
		t.Fatalf("WriteSheet failed: %v", err)
	}

	got, err := ReadSheet(tmpFile, "Data")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Errorf("round trip = %v, expected %v", got, data)
	}

	// Empty sheet name selects the first sheet.
	got, err = ReadSheet(tmpFile, "")
	if err != nil {
		t.Fatalf("ReadSheet with empty sheet failed: %v", err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Errorf("first-sheet read = %v, expected %v", got, data)
	}
}

func TestReadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "x")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	if _, err := ReadSheet(tmpFile, "NoSuchSheet"); err == nil {
		t.Error("ReadSheet on missing sheet should fail")
	}
}

func TestDataBounds(t *testing.T) {
	data := models.Table{
		{"", "", ""},
		{"", "x", "y"},
		{"", "", "z"},
	}

	r, ok := DataBounds(data)
	if !ok {
		t.Fatal("DataBounds found no data")
	}
	want := models.GridRange{StartRow: 1, EndRow: 3, StartCol: 1, EndCol: 3}
	if r != want {
		t.Errorf("DataBounds = %+v, expected %+v", r, want)
	}

	if _, ok := DataBounds(models.Table{{"", ""}, {""}}); ok {
		t.Error("DataBounds on empty data should report no bounds")
	}
}
