// garageflow drives one full work-order lifecycle against a running API:
// customer -> vehicle -> attach -> book -> hours -> done -> approve -> pay.
// Useful for smoke-testing a deployment without touching the console shell.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/realkevonlooney/Car-Mechanic-Garage/pkg/config"
)

func main() {
	var (
		baseURL = flag.String("base-url", "", "API base url (defaults to http://localhost<HTTP_ADDR>)")
		name    = flag.String("name", "Alice", "customer name")
		phone   = flag.String("phone", "555-0100", "customer phone")
		hours   = flag.String("hours", "3.0", "labour hours to record")
	)
	flag.Parse()

	cfg := config.Load()
	if *baseURL == "" {
		*baseURL = defaultBaseURL(cfg.HTTPAddr)
	}

	c := client{base: strings.TrimRight(*baseURL, "/"), http: &http.Client{Timeout: 10 * time.Second}}

	var created struct {
		ID int `json:"id"`
	}
	c.post("/v1/customers", map[string]any{"name": *name, "phone": *phone}, &created)
	customerID := created.ID
	fmt.Printf("customer_id=%d\n", customerID)

	var veh struct {
		ID int `json:"id"`
	}
	c.post("/v1/vehicles", map[string]any{
		"ownerId":    customerID,
		"make":       "Toyota",
		"model":      "Corolla",
		"year":       2019,
		"powertrain": "petrol",
		"body":       "sedan",
	}, &veh)
	fmt.Printf("vehicle_id=%d\n", veh.ID)

	c.post(fmt.Sprintf("/v1/customers/%d/vehicles", customerID), map[string]any{"vehicleId": veh.ID}, nil)

	var booked struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	c.post("/v1/work-orders", map[string]any{"customerId": customerID, "vehicleId": veh.ID}, &booked)
	fmt.Printf("work_order_id=%d status=%s\n", booked.ID, booked.Status)

	c.post(fmt.Sprintf("/v1/work-orders/%d/hours", booked.ID), map[string]any{"hours": *hours}, nil)
	c.post(fmt.Sprintf("/v1/work-orders/%d/done", booked.ID), nil, nil)

	var approved struct {
		InvoiceID int    `json:"invoiceId"`
		Total     string `json:"total"`
		Status    string `json:"status"`
	}
	c.post(fmt.Sprintf("/v1/work-orders/%d/approve", booked.ID), nil, &approved)
	fmt.Printf("invoice_id=%d total=%s status=%s\n", approved.InvoiceID, approved.Total, approved.Status)

	var paid struct {
		Status string `json:"status"`
	}
	c.post(fmt.Sprintf("/v1/invoices/%d/pay", approved.InvoiceID), map[string]any{"amount": approved.Total}, &paid)
	fmt.Printf("paid: invoice_id=%d status=%s\n", approved.InvoiceID, paid.Status)
}

type client struct {
	base string
	http *http.Client
}

func (c client) post(path string, body any, out any) {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(http.MethodPost, c.base+path, rd)
	if err != nil {
		fatal("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		fatal("post %s: %v\ntip: is the API running, and is HTTP_ADDR set correctly?", path, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fatal("post %s: status=%d body=%s", path, resp.StatusCode, string(b))
	}
	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			fatal("decode %s: %v", path, err)
		}
	}
}

func defaultBaseURL(httpAddr string) string {
	addr := strings.TrimSpace(httpAddr)
	if addr == "" {
		addr = ":8080"
	}
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	if strings.HasPrefix(addr, "0.0.0.0:") {
		return "http://localhost" + strings.TrimPrefix(addr, "0.0.0.0")
	}
	return "http://" + addr
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
