package tooltip

// assetsTemplate is the style and behavior block appended to every page.
// It is rendered once per build with text/template from assetParams.
const assetsTemplate = `<style id="{{.StyleID}}">
.{{.MarkerClass}} {
  text-decoration: underline dotted;
  cursor: help;
}

.{{.WidgetClass}} {
  display: none;
  position: fixed;
  z-index: 999;
  background: var(--md-default-bg-color, var(--bg, #fff));
  color: var(--md-typeset-color, var(--text, #222));
  border: 1px solid var(--md-default-fg-color--lighter, var(--border, #ddd));
  box-shadow: 0 4px 12px rgba(0, 0, 0, .15);
  padding: 0.75rem 1rem;
  border-radius: 6px;
  font-size: 1.3em;
  line-height: 1.65;
  pointer-events: auto;
  width: max-content;
  max-width: 70ch;
  max-height: 70vh;
  overflow: auto;
  white-space: normal;
  overflow-wrap: break-word;
}

.{{.LineClass}} { display: block; }
.{{.LineClass}} + .{{.LineClass}} { margin-top: 0.5em; }
{{- range .Levels}}
.{{$.LevelPrefix}}{{.Level}} { margin-left: {{.Indent}}em; }
{{- end}}
</style>

<script id="{{.ScriptID}}">
document.addEventListener("DOMContentLoaded", () => {
  const GRACE_MS = {{.GraceMS}};
  const MARGIN = {{.Margin}};
  const CANCEL_KEY = "{{js .CancelKey}}";
  const ATTR = "{{.PayloadAttr}}";
  const IDLE = 0, HOVERING = 1, PINNED = 2;

  const tip = document.createElement("div");
  tip.className = "{{.WidgetClass}}";
  document.body.appendChild(tip);

  let state = IDLE;
  let owner = null;
  let hideTimer = null;

  const place = (anchor) => {
    tip.style.width = "max-content";
    tip.style.height = "auto";
    tip.style.display = "block";

    const rect = anchor.getBoundingClientRect();
    const vw = window.innerWidth;
    const vh = window.innerHeight;
    const w = tip.offsetWidth;
    const h = tip.offsetHeight;

    let left = rect.left + rect.width / 2 - w / 2;
    if (left + w + MARGIN > vw) left = vw - w - MARGIN;
    if (left < MARGIN) left = MARGIN;

    let top = rect.bottom + MARGIN;
    if (top + h + MARGIN > vh) top = rect.top - h - MARGIN;
    if (top < MARGIN) top = MARGIN;

    tip.style.left = left + "px";
    tip.style.top = top + "px";
  };

  const stopTimer = () => {
    if (hideTimer !== null) {
      clearTimeout(hideTimer);
      hideTimer = null;
    }
  };

  const show = (next, marker) => {
    stopTimer();
    state = next;
    owner = marker;
    tip.innerHTML = marker.getAttribute(ATTR) || "";
    place(marker);
  };

  const dismiss = () => {
    stopTimer();
    state = IDLE;
    owner = null;
    tip.style.display = "none";
  };

  const requestHide = () => {
    if (state !== HOVERING) return;
    stopTimer();
    hideTimer = setTimeout(() => {
      hideTimer = null;
      if (state === HOVERING) dismiss();
    }, GRACE_MS);
  };

  document.querySelectorAll(".{{.MarkerClass}}").forEach((marker) => {
    if (!marker.getAttribute(ATTR)) return;

    marker.addEventListener("mouseenter", () => {
      if (state !== PINNED) show(HOVERING, marker);
    });
    marker.addEventListener("mousemove", () => {
      if (state === HOVERING && owner === marker) place(marker);
    });
    marker.addEventListener("mouseleave", requestHide);
    marker.addEventListener("click", (e) => {
      e.preventDefault();
      if (state === PINNED && owner === marker) dismiss();
      else show(PINNED, marker);
    });
  });

  tip.addEventListener("mouseenter", stopTimer);
  tip.addEventListener("mouseleave", requestHide);

  document.addEventListener("click", (e) => {
    if (state !== PINNED) return;
    if (tip.contains(e.target) || (owner && owner.contains(e.target))) return;
    dismiss();
  });

  document.addEventListener("keydown", (e) => {
    if (e.key === CANCEL_KEY && state !== IDLE) dismiss();
  });
});
</script>`
