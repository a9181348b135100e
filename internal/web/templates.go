package web

// pageTemplates holds the server-rendered pages. The markup is kept
// deliberately small; the API is the primary surface.
const pageTemplates = `
{{define "layout_head"}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} - EcoCollect</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 40rem; padding: 0 1rem; }
form { display: grid; gap: .5rem; max-width: 20rem; }
nav a { margin-right: 1rem; }
.error { color: #b00; }
</style>
</head>
<body>
{{end}}

{{define "login"}}
{{template "layout_head" .}}
<h1>Sign in</h1>
<form method="post" action="/api/auth/login" id="login-form">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Sign in</button>
</form>
<p><a href="/api/auth/sso/login">Sign in with SSO</a></p>
</body>
</html>
{{end}}

{{define "admin_login"}}
{{template "layout_head" .}}
<h1>Administrator sign in</h1>
<form method="post" action="/api/admin/auth/login">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Sign in</button>
</form>
</body>
</html>
{{end}}

{{define "dashboard"}}
{{template "layout_head" .}}
<nav>
  <a href="/dashboard">Dashboard</a>
  <a href="/api/tasks">My reports</a>
  <a href="/api/notifications">Notifications</a>
  <a href="/api/rewards">Rewards</a>
</nav>
<h1>Welcome{{if .User.Name}}, {{.User.Name}}{{end}}</h1>
<p>Signed in as {{.User.Email}}.</p>
</body>
</html>
{{end}}

{{define "admin_dashboard"}}
{{template "layout_head" .}}
<nav>
  <a href="/admin">Overview</a>
  <a href="/api/admin/tasks">All reports</a>
  <a href="/api/admin/audit">Audit log</a>
</nav>
<h1>Administration</h1>
<p>Signed in as {{.Admin.Email}}.</p>
</body>
</html>
{{end}}
`
