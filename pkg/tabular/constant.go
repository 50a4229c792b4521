package tabular

const (
	// BOM is the UTF-8 byte order mark prepended to downloads so
	// spreadsheet applications detect the encoding.
	BOM = "\uFEFF"

	// MIMECSV is the content type for CSV downloads.
	MIMECSV = "text/csv;charset=utf-8;"
	// MIMEExcel is the content type for Excel-compatible downloads.
	// The payload stays CSV; the type routes the file to Excel.
	MIMEExcel = "application/vnd.ms-excel;charset=utf-8;"

	// ExtCSV and ExtExcel are the download file extensions. The Excel
	// download keeps CSV content under an .xlsx name; Excel opens it
	// with a format warning.
	ExtCSV   = "csv"
	ExtExcel = "xlsx"
)
