package api

import (
	"fmt"
	"net/http"

	"github.com/openclaw/qrgen/theme"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(pageHTML))
}

var pageHTML = pageHead + themeCSS() + pageBody

func themeCSS() string {
	block := func(selector string, p theme.Palette) string {
		return fmt.Sprintf("  %s { --bg: %s; --fg: %s; --btn-bg: %s; --btn-fg: %s; }\n",
			selector, p.Background, p.Foreground, p.ButtonBackground, p.ButtonForeground)
	}
	return block("body.light", theme.Light.Palette()) + block("body.dark", theme.Dark.Palette())
}

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QR Code Generator</title>
<style>
`

const pageBody = `  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: var(--bg);
    color: var(--fg);
    display: flex;
    flex-direction: column;
    justify-content: center;
    align-items: center;
    min-height: 100vh;
    text-align: center;
  }
  h1 { font-size: 2.5rem; margin-bottom: 8px; }
  h2 { font-size: 1.5rem; margin-bottom: 16px; color: #01056F; }
  button {
    background: var(--btn-bg);
    color: var(--btn-fg);
    border: 1px solid var(--btn-fg);
    padding: 10px 20px;
    font-size: 18px;
    font-weight: bold;
    margin: 8px 10px;
    cursor: pointer;
    border-radius: 30px;
  }
  form { display: flex; flex-direction: column; align-items: center; }
  input { margin-bottom: 10px; padding: 10px; width: 250px; }
  #error { color: red; margin-top: 8px; font-size: 14px; min-height: 18px; }
  #qr img { display: block; margin: 20px auto; }
  .hidden { display: none !important; }
  #modal {
    position: fixed; z-index: 1000; left: 0; top: 0;
    width: 100%; height: 100%;
    background: rgba(0, 0, 0, 0.5);
    display: flex; justify-content: center; align-items: center;
  }
  #modal .content { background: #fff; padding: 20px; border-radius: 5px; }
  #modal button { background: #01056F; color: #fff; }
</style>
</head>
<body class="light">
  <h1>QR Code Generator</h1>
  <button id="theme"></button>

  <form id="form">
    <input id="url" type="text" placeholder="E.g. www.linkedin.com" required>
    <button type="submit">Generate QR Code</button>
    <div id="error"></div>
  </form>

  <div id="qr" class="hidden">
    <img id="image" alt="Generated QR Code">
    <div>
      <button id="download">Download QR Code</button>
      <button id="reset">Reset</button>
    </div>
  </div>

  <div id="modal" class="hidden">
    <div class="content">
      <h2>Enter a file name for your QR Code</h2>
      <input id="filename" type="text" placeholder="E.g. Linkedin_qrcode">
      <div>
        <button id="confirm">Download</button>
        <button id="cancel">Cancel</button>
      </div>
    </div>
  </div>
<script>
(function() {
  var $ = function(id) { return document.getElementById(id); };

  function render(s) {
    document.body.className = s.theme;
    $('theme').textContent = s.theme === 'dark' ? 'Switch to Light Mode' : 'Switch to Dark Mode';
    $('form').classList.toggle('hidden', s.phase !== 'input');
    $('qr').classList.toggle('hidden', !s.has_artifact);
    $('modal').classList.toggle('hidden', !s.prompting);
    $('error').textContent = s.error || '';
    if (document.activeElement !== $('url')) $('url').value = s.url || '';
    $('filename').value = s.filename || '';
    if (s.has_artifact) {
      $('image').setAttribute('src', s.image);
    } else {
      $('image').removeAttribute('src');
    }
  }

  function save(resp) {
    var disposition = resp.headers.get('Content-Disposition') || '';
    var match = /filename="([^"]+)"/.exec(disposition);
    return resp.blob().then(function(blob) {
      var link = document.createElement('a');
      link.href = URL.createObjectURL(blob);
      link.download = match ? match[1] : 'qrcode.png';
      document.body.appendChild(link);
      link.click();
      document.body.removeChild(link);
      URL.revokeObjectURL(link.href);
      return fetch('/state').then(function(r) { return r.json(); });
    });
  }

  function send(path, body) {
    return fetch(path, {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: body ? JSON.stringify(body) : null
    })
      .then(function(resp) {
        var type = resp.headers.get('Content-Type') || '';
        if (resp.ok && type.indexOf('image/png') === 0) return save(resp).then(render);
        return resp.json().then(function(body) {
          if (resp.ok) {
            render(body);
          } else {
            $('error').textContent = body.error || 'Request failed, please try again.';
          }
        });
      })
      .catch(function() {
        $('error').textContent = 'Connection error, please try again.';
      });
  }

  $('form').addEventListener('submit', function(e) {
    e.preventDefault();
    send('/submit', { url: $('url').value });
  });
  $('url').addEventListener('change', function() { send('/url', { text: $('url').value }); });
  $('theme').addEventListener('click', function() { send('/theme/toggle'); });
  $('download').addEventListener('click', function() { send('/download'); });
  $('reset').addEventListener('click', function() { send('/reset'); });
  $('filename').addEventListener('input', function() { send('/download/filename', { filename: $('filename').value }); });
  $('confirm').addEventListener('click', function() { send('/download/confirm'); });
  $('cancel').addEventListener('click', function() { send('/download/cancel'); });

  fetch('/state').then(function(r) { return r.json(); }).then(render);
})();
</script>
</body>
</html>`
