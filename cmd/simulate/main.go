// Command simulate runs one discount simulation against a running server and
// prints the JSON result.
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

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	grpcsim "github.com/light-bringer/discount-impact-service/internal/transport/grpc/simulation"
	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

type flags struct {
	addr          string
	timeout       time.Duration
	product       string
	price         float64
	margin        float64
	discount      float64
	salesIncrease float64
	monthlySales  int64
	compare       string
	skipNarrative bool
	set           map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	conn, err := grpc.NewClient(f.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(stderr, "failed to connect: %v\n", err)
		return 1
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	result, err := call(ctx, pb.NewSimulationServiceClient(conn), f)
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(result)
	if err != nil {
		fmt.Fprintf(stderr, "failed to encode result: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &flags{}
	fs.StringVar(&f.addr, "addr", "localhost:9090", "gRPC server address")
	fs.DurationVar(&f.timeout, "timeout", 30*time.Second, "request timeout")
	fs.StringVar(&f.product, "product", "", "product name")
	fs.Float64Var(&f.price, "price", 0, "current price")
	fs.Float64Var(&f.margin, "margin", 0, "current margin percent")
	fs.Float64Var(&f.discount, "discount", 0, "discount percent")
	fs.Float64Var(&f.salesIncrease, "sales-increase", 0, "expected sales increase percent")
	fs.Int64Var(&f.monthlySales, "monthly-sales", 0, "current monthly sales in units")
	fs.StringVar(&f.compare, "compare", "", "comma-separated discount levels to compare instead of one simulation")
	fs.BoolVar(&f.skipNarrative, "skip-narrative", false, "do not request a narrative")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Unset numeric flags stay nil so the server applies its own defaults.
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

func (f *flags) floatFlag(name string, v float64) *wrapperspb.DoubleValue {
	if !f.set[name] {
		return nil
	}
	return wrapperspb.Double(v)
}

func (f *flags) intFlag(name string, v int64) *wrapperspb.Int64Value {
	if !f.set[name] {
		return nil
	}
	return wrapperspb.Int64(v)
}

func call(ctx context.Context, client pb.SimulationServiceClient, f *flags) (proto.Message, error) {
	if f.compare != "" {
		levels, err := parseLevels(f.compare)
		if err != nil {
			return nil, err
		}
		return client.Compare(ctx, &pb.CompareRequest{
			ProductName:           f.product,
			CurrentPrice:          f.floatFlag("price", f.price),
			CurrentMargin:         f.floatFlag("margin", f.margin),
			ExpectedSalesIncrease: f.floatFlag("sales-increase", f.salesIncrease),
			CurrentMonthlySales:   f.intFlag("monthly-sales", f.monthlySales),
			DiscountLevels:        levels,
		})
	}

	return client.Simulate(ctx, &pb.SimulateRequest{
		ProductName:           f.product,
		CurrentPrice:          f.floatFlag("price", f.price),
		CurrentMargin:         f.floatFlag("margin", f.margin),
		DiscountPercent:       f.floatFlag("discount", f.discount),
		ExpectedSalesIncrease: f.floatFlag("sales-increase", f.salesIncrease),
		CurrentMonthlySales:   f.intFlag("monthly-sales", f.monthlySales),
		SkipNarrative:         f.skipNarrative,
	})
}

func parseLevels(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	levels := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid discount level %q: %w", p, err)
		}
		levels = append(levels, v)
	}
	return levels, nil
}

func reportError(w io.Writer, err error) {
	if field, description, ok := grpcsim.FieldViolation(err); ok {
		fmt.Fprintf(w, "invalid input: %s %s\n", field, description)
		return
	}
	if st, ok := status.FromError(err); ok {
		fmt.Fprintf(w, "%s: %s\n", st.Code(), st.Message())
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
