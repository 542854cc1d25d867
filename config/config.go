package config

import (
	"errors"
	"time"

	flags "github.com/jessevdk/go-flags"
)

type RPCClient struct {
	NodeURL        string        `long:"rpc-node-url" env:"RPC_NODE_URL" description:"URL for the bitcoin node" default:"http://localhost:8332/"`                                       // nolint:lll
	CookieFile     string        `long:"rpc-cookie-file" env:"RPC_COOKIE_FILE" description:"File with the RPC credential (user:password), defaults to ~/.bitcoin/.cookie"`              // nolint:lll
	MaxRetries     int           `long:"rpc-max-retries" env:"RPC_MAX_RETRIES" description:"Retries for a failed RPC request, errors reported by the node are not retried" default:"0"` // nolint:lll
	RequestTimeout time.Duration `long:"rpc-request-timeout" env:"RPC_REQUEST_TIMEOUT" description:"Timeout for a single RPC request, 0 means no timeout" default:"0"`                  // nolint:lll
}

func (r RPCClient) HasError() error {
	if r.NodeURL == "" {
		return errors.New("RPC node URL is required")
	}
	if r.MaxRetries < 0 {
		return errors.New("RPC max retries must be >= 0")
	}
	if r.RequestTimeout < 0 {
		return errors.New("RPC request timeout must be >= 0")
	}
	return nil
}

type Config struct {
	RPCNode             RPCClient
	OutputFile          string `long:"output-file" env:"OUTPUT_FILE" description:"File to write the headers to, genesis first" default:"output.bin"`   // nolint:lll
	CompressOutput      bool   `long:"compress-output" env:"COMPRESS_OUTPUT" description:"Compress the output file with zstd"`                          // nolint:lll
	ReportProgressEvery int    `long:"report-progress-every" env:"REPORT_PROGRESS_EVERY" description:"Log progress every N headers" default:"1000"` // nolint:lll
	MetricsListenAddr   string `long:"metrics-listen-addr" env:"METRICS_LISTEN_ADDR" description:"Address to serve Prometheus metrics on, disabled if empty"` // nolint:lll
}

func (c Config) HasError() error {
	if err := c.RPCNode.HasError(); err != nil {
		return err
	}
	if c.OutputFile == "" {
		return errors.New("output file is required")
	}
	if c.ReportProgressEvery <= 0 {
		return errors.New("report progress every must be > 0")
	}
	return nil
}

func Parse() (*Config, error) {
	return ParseArgs(nil)
}

// ParseArgs parses args instead of os.Args. A nil args means os.Args[1:].
func ParseArgs(args []string) (*Config, error) {
	var config Config
	parser := flags.NewParser(&config, flags.Default)
	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		return nil, err
	}
	if err := config.HasError(); err != nil {
		return nil, err
	}
	return &config, nil
}
