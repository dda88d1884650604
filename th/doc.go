// Package th records pass/fail outcomes for external test programs.
//
// Every check writes exactly one line, "PASS: <message>" or
// "FAIL: <message>", to stderr and, when a results file is configured, the
// same line to that file. The file is set explicitly with SetResultsFile or
// from the TH_RESULTS_FILE environment variable:
//
//	func main() {
//		th.InitFromEnvironment()
//		defer th.Close()
//
//		th.Check(len(items) == 3, "expected %d items, got %d", 3, len(items))
//		th.CheckEq(int32(got), int32(42), "got %d, want %d")
//	}
//
// Messages are bounded by a capacity (DefaultCapacity). A message that does
// not fit is never truncated: FormatMessage returns ErrMessageTooLong and a
// check with an oversized message terminates the program.
package th
