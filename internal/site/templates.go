package site

// pageTemplate is the html/template for each documentation page. The
// tooltip assets are not part of it; the post-render hook appends them.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.ProjectName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title"><a href="{{.BasePath}}index.html">{{.ProjectName}}</a></h2>
      <input type="text" id="search-input" placeholder="Search pages..." autocomplete="off">
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.TreeHTML}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
  <script src="{{.BasePath}}script.js"></script>
{{- if .LiveReload}}
  <script id="livereload">
  (function() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/livereload");
    ws.onmessage = function(e) { if (e.data === "reload") { location.reload(); } };
  })();
  </script>
{{- end}}
</body>
</html>`

// cssContent styles the page shell. Tooltip styles ship with the tooltip
// asset block.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f4f5f7;
  --text: #1f2328;
  --text-secondary: #4b535d;
  --text-muted: #7d8590;
  --border: #d8dee4;
  --accent: #0969da;
  --accent-light: #ddf4ff;
  --code-bg: #f6f8fa;
  --sidebar-width: 270px;
  --content-max-width: 880px;
}

[data-theme="dark"] {
  --bg: #0d1117;
  --bg-sidebar: #010409;
  --text: #e6edf3;
  --text-secondary: #c9d1d9;
  --text-muted: #7d8590;
  --border: #30363d;
  --accent: #4493f8;
  --accent-light: #121d2f;
  --code-bg: #161b22;
}

*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "Noto Sans TC", "PingFang TC", sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
  display: flex;
  min-height: 100vh;
}

.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0;
  bottom: 0;
  left: 0;
  overflow-y: auto;
  z-index: 100;
}

.sidebar-header { padding: 20px 16px 12px; border-bottom: 1px solid var(--border); }
.project-title { font-size: 1.05rem; margin-bottom: 12px; }
.project-title a { color: var(--accent); text-decoration: none; }

#search-input {
  width: 100%;
  padding: 7px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
}

.sidebar-tree { padding: 8px 0; }
.sidebar-tree ul { list-style: none; }
.sidebar-tree ul ul { padding-left: 14px; }
.sidebar-tree .hidden { display: none; }
.sidebar-tree .dir > .dir-toggle {
  display: block;
  padding: 4px 16px;
  font-size: 0.82rem;
  font-weight: 600;
  color: var(--text-secondary);
  cursor: pointer;
}
.sidebar-tree .dir > ul { display: none; }
.sidebar-tree .dir.expanded > ul { display: block; }
.sidebar-tree .file a {
  display: block;
  padding: 3px 16px 3px 22px;
  font-size: 0.82rem;
  color: var(--text-muted);
  text-decoration: none;
}
.sidebar-tree .file a:hover,
.sidebar-tree .file a.active { background: var(--accent-light); color: var(--accent); }

.sidebar-overlay { display: none; position: fixed; inset: 0; background: rgba(0,0,0,0.4); z-index: 99; }
.sidebar-overlay.visible { display: block; }

.content { margin-left: var(--sidebar-width); flex: 1; min-width: 0; }

.top-bar {
  display: flex;
  justify-content: flex-end;
  padding: 8px 24px;
  border-bottom: 1px solid var(--border);
  position: sticky;
  top: 0;
  background: var(--bg);
  z-index: 50;
}

.menu-toggle, .theme-toggle {
  background: none;
  border: none;
  color: var(--text);
  cursor: pointer;
  padding: 4px;
}
.menu-toggle { display: none; margin-right: auto; }
.moon-icon { display: none; }
[data-theme="dark"] .sun-icon { display: none; }
[data-theme="dark"] .moon-icon { display: inline; }

.page-content { max-width: var(--content-max-width); padding: 32px 40px 64px; }
.page-content h1 { font-size: 2rem; margin-bottom: 16px; }
.page-content h2 { font-size: 1.45rem; margin: 32px 0 12px; padding-bottom: 6px; border-bottom: 1px solid var(--border); }
.page-content h3 { font-size: 1.15rem; margin: 24px 0 8px; }
.page-content p, .page-content ul, .page-content ol, .page-content table { margin-bottom: 16px; }
.page-content ul, .page-content ol { padding-left: 24px; }
.page-content a { color: var(--accent); }
.page-content code { background: var(--code-bg); padding: 2px 5px; border-radius: 4px; font-size: 0.88em; }
.page-content pre { position: relative; margin-bottom: 16px; border-radius: 6px; overflow-x: auto; }
.page-content pre code { display: block; padding: 14px; background: none; }
.page-content table { border-collapse: collapse; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 6px 12px; }

.copy-btn {
  position: absolute;
  top: 8px;
  right: 8px;
  border: 1px solid var(--border);
  border-radius: 4px;
  background: var(--bg);
  color: var(--text-muted);
  padding: 2px 8px;
  font-size: 0.75rem;
  opacity: 0;
  cursor: pointer;
}
.page-content pre:hover .copy-btn { opacity: 1; }

@media (max-width: 860px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.2s; }
  .sidebar.open { transform: none; }
  .content { margin-left: 0; }
  .menu-toggle { display: block; }
  .page-content { padding: 24px 18px 48px; }
}
`

// jsContent drives the page shell: theme, sidebar and page filter.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("abbrtip-theme", theme); } catch (e) {}
  }

  var stored = null;
  try { stored = localStorage.getItem("abbrtip-theme"); } catch (e) {}
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");
  function toggleSidebar() {
    sidebar.classList.toggle("open");
    overlay.classList.toggle("visible");
  }
  var menuToggle = document.getElementById("menu-toggle");
  if (menuToggle) menuToggle.addEventListener("click", toggleSidebar);
  if (overlay) overlay.addEventListener("click", toggleSidebar);

  document.querySelectorAll(".dir-toggle").forEach(function(toggle) {
    toggle.addEventListener("click", function() {
      this.parentElement.classList.toggle("expanded");
    });
  });

  var tree = document.getElementById("sidebar-tree");
  var searchInput = document.getElementById("search-input");
  var searchIndex = [];

  var css = document.querySelector("link[rel=stylesheet]");
  var base = css ? css.getAttribute("href").replace("style.css", "") : "";
  fetch(base + "search-index.json")
    .then(function(r) { return r.json(); })
    .then(function(data) { searchIndex = data || []; })
    .catch(function() { searchIndex = []; });

  if (searchInput && tree) {
    searchInput.addEventListener("input", function() {
      var query = this.value.toLowerCase().trim();
      var hits = {};
      searchIndex.forEach(function(e) {
        var hay = (e.title + " " + e.summary + " " + e.content + " " + e.path).toLowerCase();
        if (query !== "" && hay.indexOf(query) !== -1) hits[e.path] = true;
      });

      tree.querySelectorAll(".file").forEach(function(item) {
        var link = item.querySelector("a");
        if (!link) return;
        var rel = link.getAttribute("href").replace(/^(\.\.\/)*/, "");
        var match = query === "" || hits[rel] || link.textContent.toLowerCase().indexOf(query) !== -1;
        item.classList.toggle("hidden", !match);
      });

      Array.from(tree.querySelectorAll(".dir")).reverse().forEach(function(dir) {
        var visible = dir.querySelectorAll("li.file:not(.hidden)").length > 0;
        dir.classList.toggle("hidden", !visible);
        if (query !== "" && visible) dir.classList.add("expanded");
      });
    });
  }

  document.querySelectorAll(".page-content pre").forEach(function(pre) {
    var btn = document.createElement("button");
    btn.className = "copy-btn";
    btn.textContent = "Copy";
    btn.addEventListener("click", function() {
      var code = pre.querySelector("code") || pre;
      navigator.clipboard.writeText(code.textContent).then(function() {
        btn.textContent = "Copied";
        setTimeout(function() { btn.textContent = "Copy"; }, 1500);
      });
    });
    pre.appendChild(btn);
  });
})();
`
