package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/subcommands"

	"risk-engine/internal/engine"
	"risk-engine/internal/events"
	"risk-engine/internal/model"
	"risk-engine/internal/riskprofile"
)

func register(c *subcommands.Commander, out io.Writer) {
	c.Register(&tierCmd{out: out}, "risk")
	c.Register(&adviceCmd{out: out}, "risk")
	c.Register(&describeCmd{out: out}, "tiers")
	c.Register(&tiersCmd{out: out}, "tiers")
	c.Register(&replayCmd{out: out}, "assessments")
}

// inputFlags are the two Portfolio View fields, as raw text.
type inputFlags struct {
	age  string
	goal string
}

func (f *inputFlags) set(fs *flag.FlagSet) {
	fs.StringVar(&f.age, "age", "", "Target retirement age")
	fs.StringVar(&f.goal, "goal", "", "Wealth goal")
}

func printJSON(out io.Writer, v interface{}) subcommands.ExitStatus {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, string(b))
	return subcommands.ExitSuccess
}

func printProfile(out io.Writer, p riskprofile.TierProfile) {
	fmt.Fprintf(out, "%d  %s\n", int(p.Level), p.Name)
	fmt.Fprintf(out, "    %s\n", p.Description)
	fmt.Fprintf(out, "    returns %s, volatility %s, horizon %s\n", p.Returns, p.Volatility, p.Horizon)
	fmt.Fprintf(out, "    %s\n", strings.Join(p.Recommendations, ", "))
}

type tierCmd struct {
	out    io.Writer
	input  inputFlags
	asJSON bool
}

func (*tierCmd) Name() string { return "tier" }
func (*tierCmd) Synopsis() string {
	return "computes the risk tier for a retirement age and wealth goal"
}
func (*tierCmd) Usage() string {
	return `riskctl tier -age <age> -goal <amount> [-json]

  Prints the risk tier. Missing or invalid inputs give the Medium tier.

Usage Examples:
$ riskctl tier -age 45 -goal 600000
`
}

func (c *tierCmd) SetFlags(f *flag.FlagSet) {
	c.input.set(f)
	f.BoolVar(&c.asJSON, "json", false, "Print the tier profile as JSON")
}

func (c *tierCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tier := riskprofile.ComputeTier(riskprofile.ParseInput(c.input.age, c.input.goal))
	if c.asJSON {
		return printJSON(c.out, tier.Profile())
	}
	printProfile(c.out, tier.Profile())
	return subcommands.ExitSuccess
}

type adviceCmd struct {
	out      io.Writer
	input    inputFlags
	year     int
	currency string
	asJSON   bool
}

func (*adviceCmd) Name() string     { return "advice" }
func (*adviceCmd) Synopsis() string { return "suggests a monthly contribution towards the wealth goal" }
func (*adviceCmd) Usage() string {
	return `riskctl advice -age <age> -goal <amount> [-year <yyyy>] [-currency <code>] [-json]

  Prints the allocation advice. The horizon is the retirement age minus the
  current year, so only year-like ages produce a contribution.

Usage Examples:
$ riskctl advice -age 2050 -goal 120000 -year 2025
`
}

func (c *adviceCmd) SetFlags(f *flag.FlagSet) {
	c.input.set(f)
	f.IntVar(&c.year, "year", 0, "Current year (defaults to today)")
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 currency for the amount")
	f.BoolVar(&c.asJSON, "json", false, "Print the advice as JSON")
}

func (c *adviceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts := []engine.Option{engine.WithCurrency(c.currency)}
	if c.year > 0 {
		year := c.year
		opts = append(opts, engine.WithClock(func() time.Time {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		}))
	}
	advice := engine.New(opts...).Advice(riskprofile.ParseInput(c.input.age, c.input.goal))
	if c.asJSON {
		return printJSON(c.out, advice)
	}
	fmt.Fprintln(c.out, advice.Message)
	return subcommands.ExitSuccess
}

type describeCmd struct {
	out    io.Writer
	asJSON bool
}

func (*describeCmd) Name() string     { return "describe" }
func (*describeCmd) Synopsis() string { return "shows the profile of one risk tier" }
func (*describeCmd) Usage() string {
	return `riskctl describe [-json] <index>

  Prints the profile of the tier at index 0 (Very Low) to 4 (Very High).
`
}

func (c *describeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the profile as JSON")
}

func (c *describeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: describe takes exactly one tier index")
		return subcommands.ExitUsageError
	}
	idx, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: tier index %q is not an integer\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	p, err := riskprofile.DescribeTier(idx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.asJSON {
		return printJSON(c.out, p)
	}
	printProfile(c.out, p)
	return subcommands.ExitSuccess
}

type tiersCmd struct {
	out    io.Writer
	asJSON bool
}

func (*tiersCmd) Name() string     { return "tiers" }
func (*tiersCmd) Synopsis() string { return "lists all risk tiers" }
func (*tiersCmd) Usage() string {
	return `riskctl tiers [-json]
`
}

func (c *tiersCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the profiles as JSON")
}

func (c *tiersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asJSON {
		return printJSON(c.out, riskprofile.Tiers())
	}
	for _, p := range riskprofile.Tiers() {
		printProfile(c.out, p)
	}
	return subcommands.ExitSuccess
}

type replayCmd struct {
	out      io.Writer
	policy   string
	currency string
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "replays an assessment request file through the engine" }
func (*replayCmd) Usage() string {
	return `riskctl replay [-policy pin|overwrite] [-currency <code>] <request.json>

  Reads an assessment request (the body of POST /api/risk/assessments),
  replays its events and prints the assessment response as JSON. Use "-"
  to read from stdin. Exits with failure when the outcome is FAILURE.
`
}

func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.policy, "policy", string(events.PolicyPin), "Manual tier override policy")
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 currency for the advice")
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: replay takes exactly one request file")
		return subcommands.ExitUsageError
	}
	policy, err := events.ParsePolicy(c.policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var data []byte
	if name := f.Arg(0); name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read request: %v\n", err)
		return subcommands.ExitFailure
	}

	var req model.AssessmentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid request: %v\n", err)
		return subcommands.ExitFailure
	}

	eng := engine.New(engine.WithPolicy(policy), engine.WithCurrency(c.currency))
	resp := eng.Process(&req)
	if status := printJSON(c.out, resp); status != subcommands.ExitSuccess {
		return status
	}
	if resp.AssessmentMetadata.AssessmentOutcome != model.OutcomeSuccess {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
