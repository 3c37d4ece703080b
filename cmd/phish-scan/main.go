package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/core"
	"github.com/neuralshield/neuralshield/internal/detectors"
	"github.com/neuralshield/neuralshield/internal/logging"
	"github.com/neuralshield/neuralshield/internal/metrics"
	"github.com/neuralshield/neuralshield/internal/nbmodel"
	"github.com/neuralshield/neuralshield/internal/session"
	"github.com/neuralshield/neuralshield/internal/textproc"
	"github.com/neuralshield/neuralshield/internal/utils"
)

var (
	// Model artifact flags
	vectorizerPath = flag.String("vectorizer", "models/vectorizer.json", "Path to the trained vectorizer artifact")
	classifierPath = flag.String("classifier", "models/classifier.json", "Path to the trained classifier artifact")

	// Input flags
	inputFile = flag.String("file", "", "Input email file (use stdin if not specified)")
	rawBody   = flag.Bool("raw", false, "Treat input as a bare body instead of an RFC 5322 message")
	sender    = flag.String("sender", "", "Sender address (overrides the From header)")

	// Lookup flags
	redirectTimeout = flag.Duration("redirect-timeout", 5*time.Second, "Timeout for redirect resolution")
	whoisTimeout    = flag.Duration("whois-timeout", 10*time.Second, "Timeout for WHOIS lookups")
	skipLookups     = flag.Bool("offline", false, "Skip the network lookups (redirect, WHOIS)")

	// Scan flags
	maxBodySize   = flag.Int("max-body-size", 65536, "Maximum email body size to analyze")
	snippetLength = flag.Int("snippet-length", 300, "Report snippet length in runes")

	// Logging flags
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load model artifacts; without them there is nothing to scan with
	artifact, err := nbmodel.Load(*vectorizerPath, *classifierPath)
	if err != nil {
		logger.Fatal("Failed to load model artifacts", zap.Error(err))
	}
	logger.Info("Loaded model artifacts",
		zap.String("version", artifact.Version()),
		zap.Int("dimensions", artifact.Dim()))

	body, from, err := readInput()
	if err != nil {
		logger.Fatal("Failed to read input", zap.Error(err))
	}
	if *sender != "" {
		from = *sender
	}

	service, cleanup := buildService(artifact, logger)
	defer cleanup()

	// Print input summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("Sender: %s\n", orUnknown(from))
	fmt.Printf("Body length: %d bytes\n", len(body))

	startTime := time.Now()
	report, err := service.Scan(context.Background(), "cli", core.Email{Body: body, Sender: from})
	if err != nil {
		logger.Fatal("Scan failed", zap.Error(err))
	}
	duration := time.Since(startTime)

	printReport(report, duration)
}

func readInput() (body, from string, err error) {
	var reader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			return "", "", fmt.Errorf("failed to open input file %s: %w", *inputFile, err)
		}
		defer file.Close()
		reader = file
	} else {
		reader = os.Stdin
	}

	if *rawBody {
		data, err := io.ReadAll(reader)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}

	msg, err := mail.ReadMessage(bufio.NewReader(reader))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse email: %w", err)
	}
	data, err := io.ReadAll(msg.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read email body: %w", err)
	}
	return string(data), msg.Header.Get("From"), nil
}

func buildService(artifact *nbmodel.Artifact, logger *zap.Logger) (*core.ScanService, func()) {
	suite := detectors.NewSuite()
	sessions := session.NewStore(time.Hour, 10, logger)
	limiter := session.NewCooldown(time.Nanosecond) // one-shot tool, no cooldown
	m := metrics.New(prometheus.NewRegistry())

	var redirects core.RedirectResolver = detectors.NewHTTPRedirectResolver(*redirectTimeout, logger)
	var registrar core.RegistrarClient = detectors.NewWhoisRegistrar(*whoisTimeout, logger)
	if *skipLookups {
		redirects = offlineResolver{}
		registrar = offlineRegistrar{}
	}

	service := core.NewScanService(
		textproc.NewNormalizer(),
		artifact,
		suite,
		redirects,
		registrar,
		sessions,
		limiter,
		utils.NewSanitizer(logger, *maxBodySize),
		nil, // no verdict cache for one-shot scans
		discardFeedback{},
		m,
		logger,
		core.ScanOptions{SnippetLength: *snippetLength},
		utils.Snippet,
	)

	cleanup := func() {
		sessions.Stop()
		limiter.Stop()
	}
	return service, cleanup
}

func printReport(report *core.Report, duration time.Duration) {
	fmt.Printf("\n=== Analysis Report ===\n")
	fmt.Printf("Verdict: %s\n", report.Verdict)
	fmt.Printf("Confidence: %.2f%%\n", report.Confidence*100)
	fmt.Printf("Model version: %s\n", report.ModelVersion)
	fmt.Printf("Processing time: %v\n", duration)

	if len(report.Keywords) > 0 {
		fmt.Printf("Trigger words: %s\n", strings.Join(report.Keywords, ", "))
	} else {
		fmt.Printf("No trigger words detected.\n")
	}
	if len(report.URLs) > 0 {
		fmt.Printf("Suspicious links: %d found\n", len(report.URLs))
		for _, u := range report.URLs {
			fmt.Printf("  * %s\n", u)
		}
	} else {
		fmt.Printf("No suspicious links detected.\n")
	}
	if len(report.IPs) > 0 {
		fmt.Printf("Raw IP addresses: %s\n", strings.Join(report.IPs, ", "))
	}
	if report.Typosquat != nil {
		fmt.Printf("Typosquatting alert: %s mimics %s (%.0f%% match)\n",
			report.Typosquat.Domain, report.Typosquat.Brand, report.Typosquat.Similarity*100)
	}
	for _, mw := range report.Mismatches {
		fmt.Printf("Impersonation risk: mentions %s but sender is %q (expected %s)\n",
			mw.Brand, mw.SenderDomain, mw.OfficialDomain)
	}
	if report.Redirect != nil {
		switch {
		case report.Redirect.Status != core.LookupFound:
			fmt.Printf("Redirect check: %s\n", report.Redirect.Status)
		case report.Redirect.Redirected:
			fmt.Printf("Redirects to: %s\n", report.Redirect.FinalURL)
		default:
			fmt.Printf("Direct link (no redirects).\n")
		}
	}
	if report.Registration != nil {
		if report.Registration.Status == core.LookupFound {
			fmt.Printf("Registration: registrar=%q created=%q org=%q\n",
				report.Registration.Registrar, report.Registration.CreatedDate, report.Registration.Organization)
		} else {
			fmt.Printf("Registration check: %s\n", report.Registration.Status)
		}
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// offlineResolver and offlineRegistrar report the lookups as unavailable
// without touching the network.
type offlineResolver struct{}

func (offlineResolver) Resolve(ctx context.Context, rawURL string) core.RedirectResult {
	return core.RedirectResult{Status: core.LookupUnavailable}
}

type offlineRegistrar struct{}

func (offlineRegistrar) Lookup(ctx context.Context, domain string) core.RegistrationInfo {
	return core.RegistrationInfo{Status: core.LookupUnavailable}
}

// discardFeedback satisfies the feedback port for a tool that never records
// corrections.
type discardFeedback struct{}

func (discardFeedback) Append(ctx context.Context, entry core.FeedbackEntry) error {
	return nil
}
