// Interactive front desk for the garage: a numbered menu over stdin driving the
// in-memory registry and vehicle catalog directly. All input parsing and
// re-prompting happens here; the registry only ever sees typed values.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/garage"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/vehicle"
)

func main() {
	sh := &shell{
		registry: garage.New(),
		catalog:  vehicle.NewCatalog(),
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	sh.run()
}

type shell struct {
	registry *garage.Registry
	catalog  *vehicle.Catalog
	in       *bufio.Reader
	out      io.Writer

	// eof is set once stdin is exhausted so prompt loops stop re-asking.
	eof bool
}

func (s *shell) run() {
	fmt.Fprintln(s.out, "=== Car Mechanic Garage ===")
	for {
		s.menu()
		choice := s.readInt("Choose: ")
		if s.eof || choice == 0 {
			fmt.Fprintln(s.out, "Bye.")
			return
		}
		switch choice {
		case 1:
			s.createCustomer()
		case 2:
			s.registerVehicle()
		case 3:
			s.attachVehicle()
		case 4:
			s.bookWorkOrder()
		case 5:
			s.addHours()
		case 6:
			s.markDone()
		case 7:
			s.approve()
		case 8:
			s.payInvoice()
		case 9:
			s.listCustomers()
		case 10:
			s.listVehicles()
		case 11:
			s.listWorkOrders()
		case 12:
			s.listInvoices()
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

func (s *shell) menu() {
	fmt.Fprintln(s.out, "\nMenu:")
	fmt.Fprintln(s.out, " 1) Create customer")
	fmt.Fprintln(s.out, " 2) Register vehicle")
	fmt.Fprintln(s.out, " 3) Attach vehicle to customer")
	fmt.Fprintln(s.out, " 4) Book work order")
	fmt.Fprintln(s.out, " 5) Add labour hours")
	fmt.Fprintln(s.out, " 6) Mark work order DONE")
	fmt.Fprintln(s.out, " 7) Approve work order -> invoice")
	fmt.Fprintln(s.out, " 8) Pay invoice")
	fmt.Fprintln(s.out, " 9) List customers")
	fmt.Fprintln(s.out, "10) List vehicles")
	fmt.Fprintln(s.out, "11) List work orders")
	fmt.Fprintln(s.out, "12) List invoices")
	fmt.Fprintln(s.out, " 0) Exit")
}

func (s *shell) createCustomer() {
	name := s.readLine("Name: ")
	phone := s.readLine("Phone: ")
	if s.eof {
		return
	}
	id := s.registry.CreateCustomer(name, phone)
	fmt.Fprintf(s.out, "Created customer ID %d\n", id)
}

func (s *shell) registerVehicle() {
	owner := s.readInt("Owner customer ID: ")
	make := s.readLine("Make: ")
	model := s.readLine("Model: ")
	year := s.readInt("Year: ")
	powertrain := s.readLine("Powertrain (petrol/diesel/hybrid/electric): ")
	body := s.readLine("Body type: ")
	if s.eof {
		return
	}
	v := s.catalog.Register(owner, make, model, year, powertrain, body)
	fmt.Fprintf(s.out, "Registered vehicle %s\n", v.Display())
}

func (s *shell) attachVehicle() {
	cid := s.readInt("Customer ID: ")
	vid := s.readInt("Vehicle ID: ")
	if err := s.registry.AttachVehicle(cid, vid); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Vehicle attached.")
}

func (s *shell) bookWorkOrder() {
	cid := s.readInt("Customer ID: ")
	vid := s.readInt("Vehicle ID (must belong to customer): ")
	id, err := s.registry.BookWorkOrder(cid, vid)
	if err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintf(s.out, "Work order created: %d\n", id)
}

func (s *shell) addHours() {
	id := s.readInt("Work order ID: ")
	hours := s.readDecimal("Hours to add: ")
	if err := s.registry.AddLabourHours(id, hours); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Hours added.")
}

func (s *shell) markDone() {
	id := s.readInt("Work order ID: ")
	if err := s.registry.MarkDone(id); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Marked DONE.")
}

func (s *shell) approve() {
	id := s.readInt("Work order ID: ")
	invID, err := s.registry.Approve(id)
	if err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	inv, _ := s.registry.GetInvoice(invID)
	fmt.Fprintf(s.out, "Approved. Invoice ID %d, total $%s\n", inv.ID, inv.Total.StringFixed(2))
}

func (s *shell) payInvoice() {
	id := s.readInt("Invoice ID: ")
	amount := s.readDecimal("Payment amount: $")
	if err := s.registry.PayInvoice(id, amount); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Paid. Thank you.")
}

func (s *shell) listCustomers() {
	fmt.Fprintln(s.out, "-- Customers --")
	for _, c := range s.registry.ListCustomers() {
		fmt.Fprintf(s.out, "%d: %s (%s) vehicles=%v\n", c.ID, c.Name, c.Phone, c.VehicleIDs)
	}
}

func (s *shell) listVehicles() {
	fmt.Fprintln(s.out, "-- Vehicles --")
	for _, v := range s.catalog.List() {
		fmt.Fprintln(s.out, v.Display())
	}
}

func (s *shell) listWorkOrders() {
	fmt.Fprintln(s.out, "-- Work Orders --")
	for _, wo := range s.registry.ListWorkOrders() {
		fmt.Fprintf(s.out, "%d: customer=%d vehicle=%d status=%s hours=%s\n",
			wo.ID, wo.CustomerID, wo.VehicleID, wo.Status, wo.LabourHours)
	}
}

func (s *shell) listInvoices() {
	fmt.Fprintln(s.out, "-- Invoices --")
	for _, inv := range s.registry.ListInvoices() {
		fmt.Fprintf(s.out, "%d: work order=%d total=$%s status=%s\n",
			inv.ID, inv.WorkOrderID, inv.Total.StringFixed(2), inv.Status)
	}
}

func (s *shell) readLine(prompt string) string {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	// A final unterminated line still counts as input; only a bare read
	// failure marks the stream exhausted.
	if err != nil && line == "" {
		s.eof = true
	}
	return strings.TrimRight(line, "\r\n")
}

func (s *shell) readInt(prompt string) int {
	for {
		raw := strings.TrimSpace(s.readLine(prompt))
		if s.eof {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Enter a whole number.")
			continue
		}
		return n
	}
}

func (s *shell) readDecimal(prompt string) decimal.Decimal {
	for {
		raw := strings.TrimSpace(s.readLine(prompt))
		if s.eof {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Enter a number (e.g. 1.5).")
			continue
		}
		return d
	}
}
