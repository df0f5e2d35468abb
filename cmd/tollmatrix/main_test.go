package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollmatrix/threshold"
)

const xyz = "id_start,id_end,distance\nX,Y,3\nY,Z,2\nY,X,1\n"

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	args = append(args, "-log-level", "error")
	err := run(args, strings.NewReader(stdin), &out, io.Discard)
	return out.String(), err
}

func TestRun_Matrix(t *testing.T) {
	out, err := runCLI(t, xyz, "matrix", "-id-type", "string")
	require.NoError(t, err)
	assert.Equal(t, "id,X,Y,Z\nX,0,4,0\nY,4,0,2\nZ,0,2,0\n", out)
}

func TestRun_Routes(t *testing.T) {
	out, err := runCLI(t, xyz, "routes", "-id-type", "string")
	require.NoError(t, err)
	assert.Equal(t, "id,X,Y,Z\nX,0,4,6\nY,4,0,2\nZ,6,2,0\n", out)
}

func TestRun_Unroll(t *testing.T) {
	out, err := runCLI(t, xyz, "unroll", "-id-type", "string")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "id_start,id_end,distance", lines[0])
	assert.Equal(t, "X,Y,4", lines[1])
}

func TestRun_Threshold(t *testing.T) {
	in := "id_start,id_end,distance\n1,2,10\n2,3,10\n1,3,10\n1,4,100\n"
	out, err := runCLI(t, in, "threshold", "-ref", "2", "-percent", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "id\n2\n3\n", out)

	_, err = runCLI(t, in, "threshold")
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, in, "threshold", "-ref", "abc")
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, in, "threshold", "-ref", "99")
	require.ErrorIs(t, err, threshold.ErrNotFound)
}

func TestRun_Tolls(t *testing.T) {
	out, err := runCLI(t, xyz, "tolls", "-id-type", "string")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "id_start,id_end,distance,moto,car,rv,bus,truck\n"), out)

	out, err = runCLI(t, xyz, "time-tolls", "-id-type", "string")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+6*17)
}

func TestRun_TrafficOps(t *testing.T) {
	in := "id_1,id_2,route,moto,car,rv,bus,truck\n" +
		"801,802,r1,0,10,0,1,8\n" +
		"802,801,r2,0,30,0,9,1\n"

	out, err := runCLI(t, in, "traffic", "-op", "type-counts")
	require.NoError(t, err)
	assert.Equal(t, "type,count\nhigh,1\nlow,1\n", out)

	out, err = runCLI(t, in, "traffic", "-op", "car-matrix")
	require.NoError(t, err)
	assert.Equal(t, "id,801,802\n801,0,10\n802,30,0\n", out)

	out, err = runCLI(t, in, "traffic", "-op", "multiply")
	require.NoError(t, err)
	assert.Equal(t, "id,801,802\n801,0,12.5\n802,22.5,0\n", out)

	out, err = runCLI(t, in, "traffic", "-op", "filter-routes")
	require.NoError(t, err)
	assert.Equal(t, "route\nr1\n", out)

	out, err = runCLI(t, in, "traffic", "-op", "bus-indexes")
	require.NoError(t, err)
	assert.Equal(t, "index\n", out)

	_, err = runCLI(t, in, "traffic", "-op", "nope")
	require.ErrorIs(t, err, errUsage)
}

func TestRun_TimeCheck(t *testing.T) {
	in := "id,id_2,startDay,startTime,endDay,endTime\n" +
		"1,2,Monday,00:00:00,Sunday,23:59:59\n" +
		"3,4,Monday,00:00:00,Friday,23:59:59\n"
	out, err := runCLI(t, in, "traffic", "-op", "time-check")
	require.NoError(t, err)
	assert.Equal(t, "id,id_2,incomplete\n1,2,false\n3,4,true\n", out)
}

func TestRun_FilesAndMetrics(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "edges.csv")
	outPath := filepath.Join(dir, "matrix.csv")
	promPath := filepath.Join(dir, "tollmatrix.prom")
	require.NoError(t, os.WriteFile(inPath, []byte("id_start,id_end,distance\n1001400,1001402,9.7\n"), 0o600))

	_, err := runCLI(t, "", "matrix", "-in", inPath, "-out", outPath, "-metrics", promPath)
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "id,1001400,1001402\n1001400,0,9.7\n1001402,9.7,0\n", string(got))

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "tollmatrix_matrix_points 2")
	assert.Contains(t, string(prom), `tollmatrix_records_loaded_total{kind="edges"} 1`)
}

func TestRun_Errors(t *testing.T) {
	_, err := runCLI(t, "")
	require.ErrorIs(t, err, errUsage)

	err = run(nil, strings.NewReader(""), io.Discard, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "", "frobnicate")
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "", "matrix", "-bogus")
	require.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "id_start,id_end,distance\n1,2,-3\n", "matrix")
	require.Error(t, err)

	_, err = runCLI(t, "", "matrix", "-isolated", "sometimes")
	require.Error(t, err)

	_, err = runCLI(t, "", "matrix", "-in", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
