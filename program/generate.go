package program

import (
	"fmt"
	"strings"

	"github.com/gogpu/progdesc"
)

// Generate assembles the WGSL module for a draw's processor chain.
//
// Each processor becomes one stage function, chained in pipeline order
// by the fragment entry point. Output is deterministic: equal pipeline
// configurations yield byte-identical source.
func Generate(state *progdesc.PipelineState, flags progdesc.Flags, kind progdesc.DrawKind) string {
	var sb strings.Builder

	sb.WriteString("// generated by progdesc/program; do not edit\n")
	fmt.Fprintf(&sb, "// draw kind %d, reads_dst %t, reads_frag_pos %t\n\n",
		kind, flags.ReadsDst, flags.ReadsFragPosition)

	sb.WriteString("struct VSOut {\n")
	sb.WriteString("    @builtin(position) pos: vec4<f32>,\n")
	sb.WriteString("    @location(0) local: vec2<f32>,\n")
	sb.WriteString("};\n\n")

	writeVertexStage(&sb, state, flags)
	writeFragmentStages(&sb, state)
	writeEntryPoint(&sb, state, flags)

	return sb.String()
}

func writeVertexStage(sb *strings.Builder, state *progdesc.PipelineState, flags progdesc.Flags) {
	if flags.ExplicitLocalCoords {
		sb.WriteString("@vertex\nfn vs_main(@location(0) pos: vec2<f32>, @location(1) local: vec2<f32>) -> VSOut {\n")
		sb.WriteString("    var out: VSOut;\n")
		sb.WriteString("    out.pos = vec4<f32>(pos, 0.0, 1.0);\n")
		sb.WriteString("    out.local = local;\n")
	} else {
		sb.WriteString("@vertex\nfn vs_main(@location(0) pos: vec2<f32>) -> VSOut {\n")
		sb.WriteString("    var out: VSOut;\n")
		sb.WriteString("    out.pos = vec4<f32>(pos, 0.0, 1.0);\n")
		sb.WriteString("    out.local = pos;\n")
	}
	sb.WriteString("    return out;\n}\n\n")

	if state.Primitive != nil {
		fmt.Fprintf(sb, "// primitive processor class %d\n\n", state.Primitive.ClassID())
	}
}

func writeFragmentStages(sb *strings.Builder, state *progdesc.PipelineState) {
	for i, fp := range state.Fragments {
		writeStageFunc(sb, stageFuncName(i, fp), fp)
	}
	writeStageFunc(sb, transferFuncName(state.Transfer), state.Transfer)
}

// writeStageFunc emits one stage function. Processors that implement
// Source supply the body; the rest pass the color through.
func writeStageFunc(sb *strings.Builder, name string, proc progdesc.Processor) {
	fmt.Fprintf(sb, "fn %s(c: vec4<f32>) -> vec4<f32> {\n", name)
	if src, ok := proc.(Source); ok {
		body := strings.TrimRight(src.StageWGSL(), "\n")
		for _, line := range strings.Split(body, "\n") {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("    return c;\n")
	}
	sb.WriteString("}\n\n")
}

func writeEntryPoint(sb *strings.Builder, state *progdesc.PipelineState, flags progdesc.Flags) {
	sb.WriteString("@fragment\nfn fs_main(in: VSOut) -> @location(0) vec4<f32> {\n")
	sb.WriteString("    var c = vec4<f32>(1.0, 1.0, 1.0, 1.0);\n")
	if flags.ReadsFragPosition {
		// The position read has to survive into the compiled module.
		sb.WriteString("    c = c * clamp(in.pos.w, 1.0, 1.0);\n")
	}
	for i, fp := range state.Fragments {
		fmt.Fprintf(sb, "    c = %s(c);\n", stageFuncName(i, fp))
	}
	fmt.Fprintf(sb, "    c = %s(c);\n", transferFuncName(state.Transfer))
	sb.WriteString("    return c;\n}\n")
}

func stageFuncName(i int, fp progdesc.FragmentProcessor) string {
	return fmt.Sprintf("stage_%d_c%d", i, fp.ClassID())
}

func transferFuncName(xp progdesc.Processor) string {
	return fmt.Sprintf("blend_c%d", xp.ClassID())
}
