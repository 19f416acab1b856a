package ports

// SourceDetector defines the interface for finding source files on a compiler command line.
//
//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type SourceDetector interface {
	// Sources returns the sorted, deduplicated source file arguments, exactly as passed.
	Sources(args []string) []string
}
