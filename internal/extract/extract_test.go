// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tcdoc/pkg/types"
)

var testCfg = types.ExtractConfig{TabWidth: 4}

const pouXML = `<?xml version="1.0" encoding="utf-8"?>
<TcPlcObject Version="1.1.0.1" ProductVersion="3.1.4024.0">
  <POU Name="FB_Motor" Id="{11111111-2222-3333-4444-555555555555}" SpecialFunc="None">
    <Declaration><![CDATA[FUNCTION_BLOCK FB_Motor
VAR
	bRun : BOOL; // start request
	nSpeed : INT;
END_VAR]]></Declaration>
    <Implementation>
      <ST><![CDATA[IF bRun THEN
	nSpeed := 100;
END_IF]]></ST>
    </Implementation>
    <Method Name="Reset" Id="{0}">
      <Declaration><![CDATA[METHOD Reset : BOOL]]></Declaration>
      <Implementation>
        <ST><![CDATA[Reset := TRUE;]]></ST>
      </Implementation>
    </Method>
    <Property Name="Speed" Id="{0}">
      <Declaration><![CDATA[PROPERTY Speed : INT]]></Declaration>
      <Get Name="Get" Id="{0}">
        <Declaration><![CDATA[VAR
END_VAR]]></Declaration>
        <Implementation>
          <ST><![CDATA[Speed := nSpeed;]]></ST>
        </Implementation>
      </Get>
      <Set Name="Set" Id="{0}">
        <Declaration><![CDATA[VAR
END_VAR]]></Declaration>
        <Implementation>
          <ST><![CDATA[nSpeed := Speed;]]></ST>
        </Implementation>
      </Set>
    </Property>
  </POU>
</TcPlcObject>`

func TestParsePOU(t *testing.T) {
	src := types.SourceFile{RelPath: "motors/FB_Motor.TcPOU", Kind: types.KindPOU}

	ch, err := Parse(src, []byte(pouXML), testCfg)
	require.NoError(t, err)

	assert.Equal(t, "POU: FB_Motor", ch.Title)
	assert.Equal(t, "motors", ch.Folder)

	var labels []string
	for _, s := range ch.Sections {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{
		"Declaration",
		"Implementation",
		"Method Reset Declaration",
		"Method Reset Implementation",
		"Property Speed Declaration",
		"Property Speed Get Declaration",
		"Property Speed Get Implementation",
		"Property Speed Set Declaration",
		"Property Speed Set Implementation",
	}, labels)

	// Tabs expanded to the configured width, line breaks preserved.
	require.Len(t, ch.Sections[0].Lines, 5)
	assert.Equal(t, "FUNCTION_BLOCK FB_Motor", ch.Sections[0].Lines[0])
	assert.Equal(t, "    bRun : BOOL; // start request", ch.Sections[0].Lines[2])

	assert.Equal(t, []string{"IF bRun THEN", "    nSpeed := 100;", "END_IF"}, ch.Sections[1].Lines)
}

func TestParseInterface(t *testing.T) {
	xml := `<TcPlcObject>
  <Itf Name="I_Device">
    <Declaration><![CDATA[INTERFACE I_Device]]></Declaration>
    <Method Name="Start">
      <Declaration><![CDATA[METHOD Start : BOOL]]></Declaration>
    </Method>
  </Itf>
</TcPlcObject>`
	src := types.SourceFile{RelPath: "I_Device.TcPOU", Kind: types.KindPOU}

	ch, err := Parse(src, []byte(xml), testCfg)
	require.NoError(t, err)

	assert.Equal(t, "Interface: I_Device", ch.Title)
	assert.Equal(t, "", ch.Folder)
	require.Len(t, ch.Sections, 2)
	assert.Equal(t, "Method Start Declaration", ch.Sections[1].Label)
}

func TestParseDUT(t *testing.T) {
	xml := `<TcPlcObject>
  <DUT Name="ST_Settings">
    <Declaration><![CDATA[TYPE ST_Settings :
STRUCT
	nLimit : INT := 10;
END_STRUCT
END_TYPE]]></Declaration>
  </DUT>
</TcPlcObject>`
	src := types.SourceFile{RelPath: "ST_Settings.TcDUT", Kind: types.KindDUT}

	ch, err := Parse(src, []byte(xml), testCfg)
	require.NoError(t, err)

	assert.Equal(t, "DUT: ST_Settings", ch.Title)
	require.Len(t, ch.Sections, 1)
	assert.Equal(t, "Declaration", ch.Sections[0].Label)
	assert.Equal(t, "    nLimit : INT := 10;", ch.Sections[0].Lines[2])
}

func TestParseGVL(t *testing.T) {
	xml := `<TcPlcObject>
  <GVL Name="GVL_Main">
    <Declaration><![CDATA[VAR_GLOBAL
	bEnable : BOOL;
END_VAR]]></Declaration>
  </GVL>
</TcPlcObject>`
	src := types.SourceFile{RelPath: "GVL_Main.TcGVL", Kind: types.KindGVL}

	ch, err := Parse(src, []byte(xml), testCfg)
	require.NoError(t, err)

	assert.Equal(t, "GVL: GVL_Main", ch.Title)
	require.Len(t, ch.Sections, 1)
}

func TestParseIO(t *testing.T) {
	xml := `<TcSmItem>
  <DataType Name="Inputs">
    <Declaration><![CDATA[VAR_GLOBAL
	bIn AT %I* : BOOL;
END_VAR]]></Declaration>
  </DataType>
  <DataType Name="Outputs">
    <Declaration><![CDATA[VAR_GLOBAL
	bOut AT %Q* : BOOL;
END_VAR]]></Declaration>
  </DataType>
</TcSmItem>`
	src := types.SourceFile{RelPath: "io/Device1.TcIO", Kind: types.KindIO}

	ch, err := Parse(src, []byte(xml), testCfg)
	require.NoError(t, err)

	// No object structure: title falls back to the file name, every
	// Declaration is collected in document order.
	assert.Equal(t, "Device1.TcIO", ch.Title)
	require.Len(t, ch.Sections, 2)
	assert.Equal(t, "Inputs Declaration", ch.Sections[0].Label)
	assert.Equal(t, "Outputs Declaration", ch.Sections[1].Label)
}

func TestParseLiteralCDATAMarkers(t *testing.T) {
	// Some files carry the CDATA wrapper as escaped text instead of a
	// real CDATA section.
	xml := `<TcPlcObject>
  <DUT Name="E_Mode">
    <Declaration>&lt;![CDATA[TYPE E_Mode : (Idle, Run);
END_TYPE]]&gt;</Declaration>
  </DUT>
</TcPlcObject>`
	src := types.SourceFile{RelPath: "E_Mode.TcDUT", Kind: types.KindDUT}

	ch, err := Parse(src, []byte(xml), testCfg)
	require.NoError(t, err)
	require.Len(t, ch.Sections, 1)
	assert.Equal(t, "TYPE E_Mode : (Idle, Run);", ch.Sections[0].Lines[0])
}

func TestParseEmptySectionsOmitted(t *testing.T) {
	xml := `<TcPlcObject>
  <POU Name="P_Empty">
    <Declaration><![CDATA[PROGRAM P_Empty]]></Declaration>
    <Implementation>
      <ST></ST>
    </Implementation>
  </POU>
</TcPlcObject>`
	src := types.SourceFile{RelPath: "P_Empty.TcPOU", Kind: types.KindPOU}

	ch, err := Parse(src, []byte(xml), testCfg)
	require.NoError(t, err)
	require.Len(t, ch.Sections, 1)
	assert.Equal(t, "Declaration", ch.Sections[0].Label)
}

func TestParseMalformed(t *testing.T) {
	src := types.SourceFile{RelPath: "Broken.TcDUT", Kind: types.KindDUT}

	_, err := Parse(src, []byte("<TcPlcObject><DUT Name="), testCfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedInput), "err = %v", err)
}

func TestFileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "FB_Motor.TcPOU")
	require.NoError(t, os.WriteFile(path, []byte(pouXML), 0o644))

	src := types.SourceFile{Path: path, RelPath: "FB_Motor.TcPOU", Kind: types.KindPOU}
	ch, err := File(src, testCfg)
	require.NoError(t, err)
	assert.Equal(t, "POU: FB_Motor", ch.Title)
	assert.Zero(t, ch.Number)
}
