// Command feemsview is a terminal viewer over a completed run's
// result.Result: a splash page followed by a table of per-component
// detail rows.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ohowland/feems/internal/pkg/result"
)

const logo = `
 _____ _____ _____ __  __ _____
|  ___| ____| ____|  \/  |/ ____|
| |_  |  _| |  _| | |\/| |\___ \
|  _| | |___| |___| |  | | ___) |
|_|   |_____|_____|_|  |_|_____/
`

// hmiPage builds one page of the application; pages navigate each
// other through the shared *tview.Pages instance.
type hmiPage func(pages *tview.Pages, res *result.Result) (title string, content tview.Primitive)

func main() {
	resultPath := flag.String("result", "./result.json", "path to a result.Result JSON file")
	flag.Parse()

	res, err := loadResult(*resultPath)
	if err != nil {
		panic(err)
	}

	app := tview.NewApplication()
	pages := tview.NewPages()

	hmis := []hmiPage{splash, detailTable}
	for _, hmi := range hmis {
		title, content := hmi(pages, res)
		pages.AddPage(title, content, true, title == "Splash")
	}

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(pages, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(pages).Run(); err != nil {
		panic(err)
	}
}

func loadResult(path string) (*result.Result, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := result.New()
	if err := json.Unmarshal(raw, res); err != nil {
		return nil, err
	}
	return res, nil
}

func splash(pages *tview.Pages, res *result.Result) (title string, content tview.Primitive) {
	logoBox := tview.NewTextView().
		SetTextColor(tcell.ColorBlue).
		SetDoneFunc(func(key tcell.Key) {
			pages.SwitchToPage("Detail")
		})
	fmt.Fprint(logoBox, logo)

	frame := tview.NewFrame(tview.NewBox()).
		SetBorders(0, 0, 0, 0, 0, 0).
		AddText("FEEMS run viewer", true, tview.AlignCenter, tcell.ColorWhite).
		AddText(fmt.Sprintf("%d detail rows, %.1f kg total fuel", len(res.DetailResult), totalFuelKG(res)),
			true, tview.AlignCenter, tcell.ColorWhite).
		AddText("press enter", true, tview.AlignCenter, tcell.ColorDarkMagenta)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 3, false).
		AddItem(logoBox, 6, 1, true).
		AddItem(frame, 0, 5, false)

	return "Splash", flex
}

func totalFuelKG(res *result.Result) float64 {
	var total float64
	for _, f := range res.MultiFuelConsumptionTotalKG.Entries() {
		for _, kg := range f.MassOrMassFraction {
			total += kg
		}
	}
	return total
}

func detailTable(pages *tview.Pages, res *result.Result) (title string, content tview.Primitive) {
	table := tview.NewTable().SetFixed(1, 1).SetBorders(false).SetSelectable(true, false)

	headers := []string{"Name", "Kind", "Timestep", "Power Out (kW)", "Load Ratio", "Fuel (kg)", "Status"}
	for col, h := range headers {
		table.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}

	for row, d := range res.DetailResult {
		values := []string{
			d.Name,
			d.Kind,
			strconv.Itoa(d.TimePoint),
			strconv.FormatFloat(d.PowerOutputKW, 'f', 1, 64),
			strconv.FormatFloat(d.LoadRatio, 'f', 3, 64),
			strconv.FormatFloat(d.FuelConsumption, 'f', 2, 64),
			strconv.FormatBool(d.Status),
		}
		for col, v := range values {
			table.SetCell(row+1, col, tview.NewTableCell(v).SetTextColor(tcell.ColorWhite))
		}
	}

	table.SetBorder(true).SetTitle(" Detail Result ")

	return "Detail", table
}
