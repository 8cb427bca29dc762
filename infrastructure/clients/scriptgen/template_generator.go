package scriptgen

import (
	"context"

	"creator-dashboard/domain/model"
)

// DemoScript is returned for every request until a model-backed generator is configured.
const DemoScript = `[HOOK]
"Ever wondered how to make viral content that actually converts? Let's break it down!"

[MAIN CONTENT]
"First up - it's all about the hook. You've got 3 seconds to grab attention.
*Show quick cuts of viral videos*

Next, deliver value immediately. No fluff.
*Display key statistics on screen*

The secret sauce? Pattern interrupts.
*Demonstrate with quick transition*

[CALL TO ACTION]
"Want more content tips? Hit that follow button and turn on notifications!
Drop a 🔥 if you're ready to go viral!"

[VISUALS/TRANSITIONS]
- Open with fast-paced montage
- Use text overlays for key points
- Implement pattern interrupts every 7-10 seconds
- Close with animated CTA`

// TemplateGenerator ignores the prompt and returns DemoScript.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator { return &TemplateGenerator{} }

func (g *TemplateGenerator) Generate(ctx context.Context, _ model.ScriptRequest, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return DemoScript, nil
}
