package web

import (
	"io/fs"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/require"
)

// domStub is just enough of the browser for script.js: elements by id,
// listeners, and recorded fetch/alert calls. fetch answers every request
// with 200 and an empty list.
const domStub = `
var calls = { fetch: [], alert: [] };
var elements = {};

function makeEl(id) {
  return {
    id: id, value: "", textContent: "", innerHTML: "", className: "",
    children: [], listeners: {},
    classList: { add() {}, remove() {} },
    addEventListener(type, fn) { this.listeners[type] = fn; },
    replaceChildren(...kids) { this.children = kids; this.textContent = ""; },
    append(...kids) { this.children = this.children.concat(kids); },
    reset() {},
  };
}

var document = {
  getElementById(id) {
    if (!elements[id]) elements[id] = makeEl(id);
    return elements[id];
  },
  createElement(tag) { return makeEl(tag); },
  createTextNode(text) { return { text: text }; },
};

function fetch(url, opts) {
  calls.fetch.push({ url: url, method: (opts && opts.method) || "GET", body: opts && opts.body });
  return Promise.resolve({ ok: true, status: 200, json: () => Promise.resolve([]) });
}
function alert(msg) { calls.alert.push(msg); }
function confirm() { return true; }
var console = { error() {}, log() {} };

function fill(values) {
  for (const id in values) document.getElementById(id).value = values[id];
}
function submit(formID) {
  elements[formID].listeners.submit({ preventDefault() {} });
}
`

func loadPage(t *testing.T) *goja.Runtime {
	t.Helper()
	src, err := fs.ReadFile(Assets, "script.js")
	require.NoError(t, err)

	vm := goja.New()
	run(t, vm, domStub)
	_, err = vm.RunScript("script.js", string(src))
	require.NoError(t, err)

	// the initial load fetched the list once
	require.EqualValues(t, 1, run(t, vm, "calls.fetch.length").ToInteger())
	return vm
}

func run(t *testing.T, vm *goja.Runtime, src string) goja.Value {
	t.Helper()
	v, err := vm.RunString(src)
	require.NoError(t, err)
	return v
}

const validAdd = `fill({
  "home-name": "Boca", "home-logo": "boca.png", "home-goals": "2",
  "away-name": "River", "away-logo": "river.png", "away-goals": "1",
  "date": "2026-10-17T20:00:00.000Z", "status-long": "Match Finished", "status-short": "FT",
})`

const validEdit = `fill({
  "edit-id": "64b000000000000000000001",
  "edit-home-name": "Boca", "edit-home-logo": "boca.png", "edit-home-goals": "0",
  "edit-away-name": "River", "edit-away-logo": "river.png", "edit-away-goals": "1",
})`

func TestScript_EmptyListMessage(t *testing.T) {
	vm := loadPage(t)
	require.Equal(t, "No hay partidos disponibles.",
		run(t, vm, `elements["partidos-container"].textContent`).String())
}

func TestScript_AddRejectsNonNumericGoals(t *testing.T) {
	vm := loadPage(t)
	run(t, vm, validAdd)
	run(t, vm, `fill({"home-goals": "dos"}); submit("partido-form")`)

	require.EqualValues(t, 1, run(t, vm, "calls.fetch.length").ToInteger())
	require.EqualValues(t, 1, run(t, vm, "calls.alert.length").ToInteger())
	require.Contains(t, run(t, vm, "calls.alert[0]").String(), "Goles local")
}

func TestScript_AddRejectsEmptyName(t *testing.T) {
	vm := loadPage(t)
	run(t, vm, validAdd)
	run(t, vm, `fill({"away-name": "   "}); submit("partido-form")`)

	require.EqualValues(t, 1, run(t, vm, "calls.fetch.length").ToInteger())
	require.Contains(t, run(t, vm, "calls.alert[0]").String(), "Equipo visitante")
}

func TestScript_AddPostsValidForm(t *testing.T) {
	vm := loadPage(t)
	run(t, vm, validAdd)
	run(t, vm, `submit("partido-form")`)

	require.EqualValues(t, 0, run(t, vm, "calls.alert.length").ToInteger())
	require.Equal(t, "POST", run(t, vm, "calls.fetch[1].method").String())
	require.Equal(t, "/partidos", run(t, vm, "calls.fetch[1].url").String())
	require.EqualValues(t, 2, run(t, vm, "JSON.parse(calls.fetch[1].body).goals.home").ToInteger())
	// the list is reloaded after the mutation
	require.Equal(t, "GET", run(t, vm, "calls.fetch[2].method").String())
}

func TestScript_EditRejectsInvalidInput(t *testing.T) {
	vm := loadPage(t)
	run(t, vm, validEdit)
	run(t, vm, `fill({"edit-away-goals": "1.5"}); submit("edit-form")`)
	run(t, vm, validEdit)
	run(t, vm, `fill({"edit-home-name": ""}); submit("edit-form")`)

	require.EqualValues(t, 1, run(t, vm, "calls.fetch.length").ToInteger())
	require.EqualValues(t, 2, run(t, vm, "calls.alert.length").ToInteger())
	require.Contains(t, run(t, vm, "calls.alert[0]").String(), "Goles visitante")
	require.Contains(t, run(t, vm, "calls.alert[1]").String(), "Equipo local")
}

func TestScript_EditPutsValidForm(t *testing.T) {
	vm := loadPage(t)
	run(t, vm, validEdit)
	run(t, vm, `submit("edit-form")`)

	require.EqualValues(t, 0, run(t, vm, "calls.alert.length").ToInteger())
	require.Equal(t, "PUT", run(t, vm, "calls.fetch[1].method").String())
	require.Equal(t, "/partidos/64b000000000000000000001", run(t, vm, "calls.fetch[1].url").String())
	require.EqualValues(t, 0, run(t, vm, "JSON.parse(calls.fetch[1].body).goals.home").ToInteger())
}

func TestScript_EditShowsServerError(t *testing.T) {
	vm := loadPage(t)
	run(t, vm, `fetch = function (url, opts) {
  calls.fetch.push({ url: url, method: (opts && opts.method) || "GET" });
  if (opts && opts.method === "PUT") {
    return Promise.resolve({ ok: false, status: 404, json: () => Promise.resolve({ error: "Partido no encontrado." }) });
  }
  return Promise.resolve({ ok: true, status: 200, json: () => Promise.resolve([]) });
}`)
	run(t, vm, validEdit)
	run(t, vm, `submit("edit-form")`)

	require.EqualValues(t, 1, run(t, vm, "calls.alert.length").ToInteger())
	require.Contains(t, run(t, vm, "calls.alert[0]").String(), "Partido no encontrado.")
	// the list is still reloaded
	require.Equal(t, "GET", run(t, vm, "calls.fetch[2].method").String())
}
