package view

// boardClientScript connects the enclosing live section to its board socket.
// Messages older than the last applied revision are ignored.
const boardClientScript = `(function () {
  var section = document.currentScript.closest("section[data-socket]");
  if (!section || !window.WebSocket) { return; }
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(scheme + location.host + section.dataset.socket);
  var revision = 0;
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.revision <= revision) { return; }
    revision = msg.revision;
    var current = section.querySelector("#` + BoardFragmentID + `");
    if (current) { current.outerHTML = msg.html; }
  };
  section.addEventListener("click", function (ev) {
    var btn = ev.target.closest("[data-board-action]");
    if (!btn || ws.readyState !== WebSocket.OPEN) { return; }
    ws.send(JSON.stringify({ action: btn.dataset.boardAction }));
  });
})();`
